package update_unavailability_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/service/unavailability"
	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
	"github.com/artizaho/workshop-booking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SetStatus(ctx context.Context, id uuid.UUID, req *models.UpdatePeriodStatusRequest) (*models.PeriodResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.PeriodResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, periodID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/unavailability/"+periodID+"/status", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"periodId": periodID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Approve(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("SetStatus", mock.Anything, id, &models.UpdatePeriodStatusRequest{Status: "approved", AdminNotes: ptr.Ptr("ok")}).
		Return(&models.PeriodResponse{ID: id.String(), Status: "approved"}, nil)

	w := serve(NewHandler(svc, nopLogger{}), id.String(), `{"status":"approved","adminNotes":"ok"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()

	for _, tc := range []struct {
		name       string
		periodID   string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad id", periodID: "nope", body: `{"status":"approved"}`, wantStatus: http.StatusBadRequest},
		{name: "no body", periodID: id, body: ``, wantStatus: http.StatusBadRequest},
		{name: "unknown status", periodID: id, body: `{"status":"maybe"}`, err: unavailability.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "missing period", periodID: id, body: `{"status":"rejected"}`, err: unavailability.ErrPeriodNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", periodID: id, body: `{"status":"rejected"}`, err: unavailability.ErrInternal, wantStatus: http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			if tc.err != nil {
				svc.On("SetStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)
			}

			w := serve(NewHandler(svc, nopLogger{}), tc.periodID, tc.body)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
