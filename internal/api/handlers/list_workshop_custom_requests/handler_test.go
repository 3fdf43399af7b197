package list_workshop_custom_requests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/customrequests"
	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
	"github.com/artizaho/workshop-booking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListWorkshopRequests(ctx context.Context, req *models.ListWorkshopRequestsRequest) ([]*models.CustomRequestResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).([]*models.CustomRequestResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, userID int64, workshopID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/workshops/"+workshopID+"/custom-requests"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"workshopId": workshopID})
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Lists(t *testing.T) {
	svc := new(mockService)
	svc.On("ListWorkshopRequests", mock.Anything, &models.ListWorkshopRequestsRequest{
		UserID: 42, WorkshopID: 10, Status: ptr.Ptr("pending"),
	}).Return([]*models.CustomRequestResponse{{
		ID:            "7b0c6a4e-2f51-4f0e-9f7a-1c2d3e4f5a6b",
		WorkshopID:    10,
		UserID:        7,
		PreferredDate: "2026-08-16",
		Participants:  12,
		ContactEmail:  "hery@example.mg",
		HasConflict:   true,
		Status:        "pending",
		CreatedAt:     "2026-08-10T09:00:00Z",
		UpdatedAt:     "2026-08-10T09:00:00Z",
	}}, nil)

	w := serve(NewHandler(svc, nopLogger{}), 42, "10", "?status=pending")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": "7b0c6a4e-2f51-4f0e-9f7a-1c2d3e4f5a6b",
		"workshopId": 10,
		"userId": 7,
		"preferredDate": "2026-08-16",
		"participants": 12,
		"isPrivate": false,
		"contactEmail": "hery@example.mg",
		"hasConflict": true,
		"status": "pending",
		"createdAt": "2026-08-10T09:00:00Z",
		"updatedAt": "2026-08-10T09:00:00Z"
	}]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		userID     int64
		workshopID string
		err        error
		wantStatus int
	}{
		{name: "bad workshop id", userID: 42, workshopID: "abc", wantStatus: http.StatusBadRequest},
		{name: "anonymous", workshopID: "10", wantStatus: http.StatusUnauthorized},
		{name: "not the artisan", userID: 7, workshopID: "10", err: customrequests.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "unknown workshop", userID: 42, workshopID: "10", err: customrequests.ErrWorkshopNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown status", userID: 42, workshopID: "10", err: customrequests.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", userID: 42, workshopID: "10", err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			if tc.err != nil {
				svc.On("ListWorkshopRequests", mock.Anything, mock.Anything).Return(nil, tc.err)
			}

			w := serve(NewHandler(svc, nopLogger{}), tc.userID, tc.workshopID, "")
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
