package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nopLogger{})
}

func TestClient_GetWorkshop(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/workshops/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 42,
			"artisan_id": 7,
			"title": "Tissage de raphia",
			"base_price": 45000,
			"max_participants": 12,
			"privatization_enabled": true,
			"privatization_options": {"min_participants": 6, "max_participants": 15, "base_price": 200000, "price_per_participant": 35000},
			"status": "published"
		}`))
	})

	workshop, err := client.GetWorkshop(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(7), workshop.ArtisanID)
	assert.True(t, workshop.IsPublished())
	assert.Equal(t, &domain.PrivatizationOption{
		MinParticipants:     6,
		MaxParticipants:     15,
		BasePrice:           200000,
		PricePerParticipant: 35000,
	}, workshop.Privatization())
}

func TestClient_GetWorkshopErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrWorkshopNotFound},
		{name: "server error", status: http.StatusBadGateway, body: `{"code":502,"message":"upstream"}`, want: ErrServiceUnavailable},
		{name: "bad request", status: http.StatusBadRequest, body: `{"code":400,"message":"bad id"}`, want: ErrInvalidResponse},
		{name: "garbage body", status: http.StatusOK, body: `not json`, want: ErrInvalidResponse},
		{name: "wrong workshop", status: http.StatusOK, body: `{"id": 1}`, want: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetWorkshop(context.Background(), 42)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_GetPublishedWorkshop(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 42, "status": "draft"}`))
	})

	_, err := client.GetPublishedWorkshop(context.Background(), 42)
	assert.ErrorIs(t, err, ErrWorkshopNotFound)
}

func TestWorkshop_PrivatizationDisabled(t *testing.T) {
	w := Workshop{PrivatizationEnabled: false, PrivatizationOptions: &PrivatizationOptions{MinParticipants: 1}}
	assert.Nil(t, w.Privatization())

	w = Workshop{PrivatizationEnabled: true}
	assert.Nil(t, w.Privatization())
}
