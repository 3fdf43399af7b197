package get_booking

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
	"github.com/artizaho/workshop-booking/internal/service/bookings"
	"github.com/artizaho/workshop-booking/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, userID)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, bookingID string, userID int64) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Found(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, int64(55), int64(7)).Return(&models.BookingResponse{
		ID: 55, UserID: 7, WorkshopID: 10, BookingDate: "2026-08-20", StartTime: "14:00", Status: "confirmed",
	}, nil)

	w := serve(NewHandler(svc, nopLogger{}), "55", 7)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestHandle_Errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		bookingID  string
		userID     int64
		err        error
		wantStatus int
	}{
		{name: "bad id", bookingID: "-", userID: 7, wantStatus: http.StatusBadRequest},
		{name: "no user", bookingID: "55", wantStatus: http.StatusUnauthorized},
		{name: "not found", bookingID: "55", userID: 7, err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "not owner", bookingID: "55", userID: 9, err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", bookingID: "55", userID: 7, err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			if tc.err != nil {
				svc.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)
			}

			w := serve(NewHandler(svc, nopLogger{}), tc.bookingID, tc.userID)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
