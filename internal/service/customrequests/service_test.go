package customrequests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	requestRepo "github.com/artizaho/workshop-booking/internal/infra/storage/customrequest"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
	"github.com/artizaho/workshop-booking/pkg/ptr"
)

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomBookingRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.CustomBookingRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) ListByWorkshop(ctx context.Context, workshopID int64, status *domain.CustomRequestStatus) ([]*domain.CustomBookingRequest, error) {
	args := m.Called(ctx, workshopID, status)
	r, _ := args.Get(0).([]*domain.CustomBookingRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CustomRequestStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
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
	requesterID int64 = 7
	artisanID   int64 = 42
)

var requestID = uuid.MustParse("7b0c6a4e-2f51-4f0e-9f7a-1c2d3e4f5a6b")

func sampleRequest(status domain.CustomRequestStatus) *domain.CustomBookingRequest {
	return &domain.CustomBookingRequest{
		ID:            requestID,
		WorkshopID:    10,
		UserID:        requesterID,
		PreferredDate: time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
		Participants:  12,
		ContactEmail:  "hery@example.mg",
		Status:        status,
	}
}

func workshopCatalog(ctx context.Context) *mockCatalog {
	catalog := new(mockCatalog)
	catalog.On("GetWorkshop", ctx, int64(10)).Return(&catalogservice.Workshop{ID: 10, ArtisanID: artisanID}, nil)
	return catalog
}

func TestListWorkshopRequests(t *testing.T) {
	ctx := context.Background()
	pending := domain.CustomRequestPending
	repo := new(mockRequestRepo)
	repo.On("ListByWorkshop", ctx, int64(10), &pending).
		Return([]*domain.CustomBookingRequest{sampleRequest(domain.CustomRequestPending)}, nil)
	svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

	resp, err := svc.ListWorkshopRequests(ctx, &models.ListWorkshopRequestsRequest{
		UserID: artisanID, WorkshopID: 10, Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, requestID.String(), resp[0].ID)
	assert.Equal(t, "2026-08-16", resp[0].PreferredDate)
	assert.Equal(t, "pending", resp[0].Status)
}

func TestListWorkshopRequests_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not the artisan", func(t *testing.T) {
		repo := new(mockRequestRepo)
		svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

		_, err := svc.ListWorkshopRequests(ctx, &models.ListWorkshopRequestsRequest{UserID: requesterID, WorkshopID: 10})
		assert.ErrorIs(t, err, ErrAccessDenied)
		repo.AssertNotCalled(t, "ListByWorkshop", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown workshop", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("GetWorkshop", ctx, int64(10)).Return(nil, catalogservice.ErrWorkshopNotFound)
		svc := NewService(new(mockRequestRepo), catalog, nopLogger{})

		_, err := svc.ListWorkshopRequests(ctx, &models.ListWorkshopRequestsRequest{UserID: artisanID, WorkshopID: 10})
		assert.ErrorIs(t, err, ErrWorkshopNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewService(new(mockRequestRepo), new(mockCatalog), nopLogger{})

		_, err := svc.ListWorkshopRequests(ctx, &models.ListWorkshopRequestsRequest{
			UserID: artisanID, WorkshopID: 10, Status: ptr.Ptr("cancelled"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mockRequestRepo)
		repo.On("ListByWorkshop", ctx, int64(10), (*domain.CustomRequestStatus)(nil)).Return(nil, errors.New("connection lost"))
		svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

		_, err := svc.ListWorkshopRequests(ctx, &models.ListWorkshopRequestsRequest{UserID: artisanID, WorkshopID: 10})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUpdateStatus_ArtisanReviewsPendingRequest(t *testing.T) {
	ctx := context.Background()

	for _, status := range []domain.CustomRequestStatus{domain.CustomRequestConfirmed, domain.CustomRequestRejected} {
		t.Run(string(status), func(t *testing.T) {
			repo := new(mockRequestRepo)
			repo.On("GetByID", ctx, requestID).Return(sampleRequest(domain.CustomRequestPending), nil)
			repo.On("UpdateStatus", ctx, requestID, domain.CustomRequestPending, status).Return(nil)
			svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

			err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: artisanID, Status: string(status)})
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStatus_Rules(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name    string
		current domain.CustomRequestStatus
		userID  int64
		status  string
		wantErr error
	}{
		{name: "requester cannot confirm", current: domain.CustomRequestPending, userID: requesterID, status: "confirmed", wantErr: ErrAccessDenied},
		{name: "already confirmed", current: domain.CustomRequestConfirmed, userID: artisanID, status: "rejected", wantErr: ErrInvalidTransition},
		{name: "expired", current: domain.CustomRequestExpired, userID: artisanID, status: "confirmed", wantErr: ErrInvalidTransition},
		{name: "back to pending", current: domain.CustomRequestPending, userID: artisanID, status: "pending", wantErr: ErrInvalidTransition},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRequestRepo)
			repo.On("GetByID", ctx, requestID).Return(sampleRequest(tc.current), nil)
			svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

			err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: tc.userID, Status: tc.status})
			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status", func(t *testing.T) {
		repo := new(mockRequestRepo)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: artisanID, Status: "paid"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing request", func(t *testing.T) {
		repo := new(mockRequestRepo)
		repo.On("GetByID", ctx, requestID).Return(nil, requestRepo.ErrRequestNotFound)
		svc := NewService(repo, new(mockCatalog), nopLogger{})

		err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: artisanID, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("expired while reviewing", func(t *testing.T) {
		repo := new(mockRequestRepo)
		repo.On("GetByID", ctx, requestID).Return(sampleRequest(domain.CustomRequestPending), nil)
		repo.On("UpdateStatus", ctx, requestID, domain.CustomRequestPending, domain.CustomRequestConfirmed).
			Return(requestRepo.ErrRequestNotFound)
		svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

		err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: artisanID, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mockRequestRepo)
		repo.On("GetByID", ctx, requestID).Return(sampleRequest(domain.CustomRequestPending), nil)
		repo.On("UpdateStatus", ctx, requestID, domain.CustomRequestPending, domain.CustomRequestRejected).
			Return(errors.New("connection lost"))
		svc := NewService(repo, workshopCatalog(ctx), nopLogger{})

		err := svc.UpdateStatus(ctx, requestID, &models.UpdateStatusRequest{UserID: artisanID, Status: "rejected"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
