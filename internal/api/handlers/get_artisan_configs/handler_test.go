package get_artisan_configs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/config"
	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListForArtisan(ctx context.Context, artisanID int64, userID int64) (*models.ConfigListResponse, error) {
	args := m.Called(ctx, artisanID, userID)
	resp, _ := args.Get(0).(*models.ConfigListResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, userID int64) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/artisans/42/configs", nil)
	r = mux.SetURLVars(r, map[string]string{"artisanId": "42"})
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Own(t *testing.T) {
	svc := new(mockService)
	svc.On("ListForArtisan", mock.Anything, int64(42), int64(42)).Return(&models.ConfigListResponse{
		Configs: []models.ConfigResponse{{ID: 1, Level: "artisan"}, {ID: 2, Level: "workshop"}},
	}, nil)

	w := serve(NewHandler(svc, nopLogger{}), 42)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"workshop"`)
}

func TestHandle_Errors(t *testing.T) {
	svc := new(mockService)
	svc.On("ListForArtisan", mock.Anything, int64(42), int64(7)).Return(nil, config.ErrAccessDenied)

	assert.Equal(t, http.StatusUnauthorized, serve(NewHandler(svc, nopLogger{}), 0).Code)
	assert.Equal(t, http.StatusForbidden, serve(NewHandler(svc, nopLogger{}), 7).Code)
}
