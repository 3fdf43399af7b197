package quote_privatization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetPublishedWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error) {
	args := m.Called(ctx, workshopID)
	w, _ := args.Get(0).(*catalogservice.Workshop)
	return w, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func privatizable() *catalogservice.Workshop {
	return &catalogservice.Workshop{
		ID: 10, ArtisanID: 42, Title: "Sculpture sur bois", BasePrice: 60000, MaxParticipants: 6, Status: "published",
		PrivatizationEnabled: true,
		PrivatizationOptions: &catalogservice.PrivatizationOptions{
			MinParticipants: 3, MaxParticipants: 12, BasePrice: 200000, PricePerParticipant: 45000,
		},
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name         string
		workshop     *catalogservice.Workshop
		catalogErr   error
		participants uint
		wantTotal    domain.Ariary
		wantErr      error
	}{
		{name: "lower bound", workshop: privatizable(), participants: 3, wantTotal: 335000},
		{name: "upper bound", workshop: privatizable(), participants: 12, wantTotal: 740000},
		{name: "below bounds", workshop: privatizable(), participants: 2, wantErr: ErrInvalidParticipants},
		{name: "above bounds", workshop: privatizable(), participants: 13, wantErr: ErrInvalidParticipants},
		{
			name:         "privatization disabled",
			workshop:     &catalogservice.Workshop{ID: 10, ArtisanID: 42, Status: "published"},
			participants: 4,
			wantErr:      ErrPrivatizationDisabled,
		},
		{name: "not found", catalogErr: catalogservice.ErrWorkshopNotFound, participants: 4, wantErr: ErrWorkshopNotFound},
		{name: "catalog down", catalogErr: errors.New("503"), participants: 4, wantErr: ErrInternal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			catalog := new(mockCatalog)
			catalog.On("GetPublishedWorkshop", ctx, int64(10)).Return(tc.workshop, tc.catalogErr)

			resp, err := NewUseCase(catalog, nopLogger{}).Execute(ctx, &Request{WorkshopID: 10, Participants: tc.participants})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, resp.Total)
			assert.Equal(t, uint(3), resp.Option.MinParticipants)
		})
	}
}

func TestExecute_ZeroParticipants(t *testing.T) {
	_, err := NewUseCase(new(mockCatalog), nopLogger{}).Execute(context.Background(), &Request{WorkshopID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
