package get_workshop_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/service/config"
	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetForWorkshop(ctx context.Context, workshopID int64) (*models.ConfigResponse, error) {
	args := m.Called(ctx, workshopID)
	resp, _ := args.Get(0).(*models.ConfigResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, workshopID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/workshops/"+workshopID+"/config", nil)
	r = mux.SetURLVars(r, map[string]string{"workshopId": workshopID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_PlatformDefaults(t *testing.T) {
	svc := new(mockService)
	svc.On("GetForWorkshop", mock.Anything, int64(10)).Return(&models.ConfigResponse{
		ArtisanID:            42,
		Level:                "platform",
		SlotTimes:            []string{"09:00", "14:00"},
		MinParticipants:      1,
		MaxParticipants:      8,
		NonOperatingWeekdays: []int{0},
		AlmostFullThreshold:  2,
	}, nil)

	w := serve(NewHandler(svc, nopLogger{}), "10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"platform"`)
	assert.NotContains(t, w.Body.String(), `"createdAt"`)
}

func TestHandle_Errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		workshopID string
		err        error
		wantStatus int
	}{
		{name: "bad id", workshopID: "ten", wantStatus: http.StatusBadRequest},
		{name: "unknown workshop", workshopID: "10", err: config.ErrWorkshopNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", workshopID: "10", err: config.ErrInternal, wantStatus: http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			if tc.err != nil {
				svc.On("GetForWorkshop", mock.Anything, mock.Anything).Return(nil, tc.err)
			}

			w := serve(NewHandler(svc, nopLogger{}), tc.workshopID)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
