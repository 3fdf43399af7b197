package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	bookingRepo "github.com/artizaho/workshop-booking/internal/infra/storage/booking"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/service/bookings/models"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetByWorkshopWithFilter(ctx context.Context, filter domain.WorkshopBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	return m.Called(ctx, id, status, reason).Error(0)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error) {
	args := m.Called(ctx, workshopID)
	w, _ := args.Get(0).(*catalogservice.Workshop)
	return w, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	participantID int64 = 7
	artisanID     int64 = 42
	strangerID    int64 = 99
)

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            1,
		UserID:        participantID,
		WorkshopID:    10,
		ArtisanID:     artisanID,
		BookingDate:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		Participants:  2,
		Status:        status,
		WorkshopTitle: "Vannerie en raphia",
		TotalPrice:    90000,
	}
}

func TestGetByID_AccessRules(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "participant", userID: participantID},
		{name: "artisan", userID: artisanID},
		{name: "stranger", userID: strangerID, wantErr: ErrAccessDenied},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockBookingRepo)
			repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusConfirmed), nil)
			svc := NewService(repo, new(mockCatalog), nopLogger{})

			resp, err := svc.GetByID(ctx, 1, tc.userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026-11-20", resp.BookingDate)
			assert.Equal(t, "09:00", resp.StartTime)
			assert.Equal(t, int64(90000), resp.TotalPrice)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookingRepo)
	repo.On("GetByID", ctx, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)
	svc := NewService(repo, new(mockCatalog), nopLogger{})

	_, err := svc.GetByID(ctx, 5, participantID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(new(mockBookingRepo), new(mockCatalog), nopLogger{})
	status := "archived"

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: participantID, Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWorkshopBookings(t *testing.T) {
	ctx := context.Background()
	workshop := &catalogservice.Workshop{ID: 10, ArtisanID: artisanID}

	t.Run("artisan sees bookings", func(t *testing.T) {
		repo := new(mockBookingRepo)
		catalog := new(mockCatalog)
		catalog.On("GetWorkshop", ctx, int64(10)).Return(workshop, nil)
		repo.On("GetByWorkshopWithFilter", ctx, domain.WorkshopBookingsFilter{WorkshopID: 10}).
			Return([]*domain.Booking{sampleBooking(domain.StatusPending)}, nil)
		svc := NewService(repo, catalog, nopLogger{})

		resp, err := svc.GetWorkshopBookings(ctx, &models.GetWorkshopBookingsRequest{UserID: artisanID, WorkshopID: 10})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
		repo.AssertExpectations(t)
	})

	t.Run("other user denied", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("GetWorkshop", ctx, int64(10)).Return(workshop, nil)
		svc := NewService(new(mockBookingRepo), catalog, nopLogger{})

		_, err := svc.GetWorkshopBookings(ctx, &models.GetWorkshopBookingsRequest{UserID: strangerID, WorkshopID: 10})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown workshop", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("GetWorkshop", ctx, int64(10)).Return(nil, catalogservice.ErrWorkshopNotFound)
		svc := NewService(new(mockBookingRepo), catalog, nopLogger{})

		_, err := svc.GetWorkshopBookings(ctx, &models.GetWorkshopBookingsRequest{UserID: artisanID, WorkshopID: 10})
		assert.ErrorIs(t, err, ErrWorkshopNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc := NewService(new(mockBookingRepo), new(mockCatalog), nopLogger{})
		start := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)

		_, err := svc.GetWorkshopBookings(ctx, &models.GetWorkshopBookingsRequest{
			UserID: artisanID, WorkshopID: 10, StartDate: &start, EndDate: &end,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel_StatusDependsOnCaller(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		userID int64
		want   domain.BookingStatus
	}{
		{name: "participant", userID: participantID, want: domain.StatusCancelledByUser},
		{name: "artisan", userID: artisanID, want: domain.StatusCancelledByArtisan},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockBookingRepo)
			repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusConfirmed), nil)
			repo.On("Cancel", ctx, int64(1), tc.want, "rain").Return(nil)
			svc := NewService(repo, new(mockCatalog), nopLogger{})

			err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: tc.userID, CancellationReason: "rain"})
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestCancel_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("already completed", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusCompleted), nil)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: participantID})
		assert.ErrorIs(t, err, ErrCannotCancel)
		repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stranger", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusPending), nil)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: strangerID})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc := NewService(new(mockBookingRepo), new(mockCatalog), nopLogger{})
		reason := make([]rune, domain.MaxCancellationReasonLength+1)
		for i := range reason {
			reason[i] = 'é'
		}

		err := svc.Cancel(ctx, 1, &models.CancelBookingRequest{UserID: participantID, CancellationReason: string(reason)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("artisan confirms pending", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusPending), nil)
		repo.On("UpdateStatus", ctx, int64(1), domain.StatusConfirmed).Return(nil)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: artisanID, Status: "confirmed"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusPending), nil)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: artisanID, Status: "completed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("participant cannot confirm", func(t *testing.T) {
		repo := new(mockBookingRepo)
		repo.On("GetByID", ctx, int64(1)).Return(sampleBooking(domain.StatusPending), nil)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: participantID, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewService(new(mockBookingRepo), new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: artisanID, Status: "paid"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
