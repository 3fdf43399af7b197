package get_custom_request

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	requestRepo "github.com/artizaho/workshop-booking/internal/infra/storage/customrequest"
)

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomBookingRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.CustomBookingRequest)
	return r, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &domain.CustomBookingRequest{ID: id, UserID: 7, WorkshopID: 10, Status: domain.CustomRequestPending}

	for _, tc := range []struct {
		name    string
		userID  int64
		repoErr error
		wantErr error
	}{
		{name: "author", userID: 7},
		{name: "someone else", userID: 8, wantErr: ErrAccessDenied},
		{name: "missing", userID: 7, repoErr: requestRepo.ErrRequestNotFound, wantErr: ErrRequestNotFound},
		{name: "database down", userID: 7, repoErr: errors.New("eof"), wantErr: ErrInternal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRequestRepo)
			if tc.repoErr != nil {
				repo.On("GetByID", ctx, id).Return(nil, tc.repoErr)
			} else {
				repo.On("GetByID", ctx, id).Return(stored, nil)
			}

			got, err := NewUseCase(repo, nopLogger{}).Execute(ctx, id, tc.userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}
