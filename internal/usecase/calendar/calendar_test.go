package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/pkg/types"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetPublishedWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error) {
	args := m.Called(ctx, workshopID)
	w, _ := args.Get(0).(*catalogservice.Workshop)
	return w, args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, artisanID, workshopID int64, maxParticipants uint) (*domain.WorkshopSlotsConfig, error) {
	args := m.Called(ctx, artisanID, workshopID, maxParticipants)
	c, _ := args.Get(0).(*domain.WorkshopSlotsConfig)
	return c, args.Error(1)
}

type mockIndexer struct {
	mock.Mock
}

func (m *mockIndexer) BlockingIndex(ctx context.Context, artisanID int64, from, to time.Time) (*eligibility.Index, error) {
	args := m.Called(ctx, artisanID, from, to)
	i, _ := args.Get(0).(*eligibility.Index)
	return i, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday
var now = time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func loadCalendar(t *testing.T, policy domain.PlatformPolicy, periods []domain.UnavailabilityPeriod) *Calendar {
	t.Helper()
	ctx := context.Background()

	workshop := &catalogservice.Workshop{
		ID: 10, ArtisanID: 42, Title: "Broderie", BasePrice: 45000, MaxParticipants: 8, Status: "published",
		PrivatizationEnabled: true,
		PrivatizationOptions: &catalogservice.PrivatizationOptions{
			MinParticipants: 4, MaxParticipants: 10, BasePrice: 100000, PricePerParticipant: 30000,
		},
	}

	catalog := new(mockCatalog)
	catalog.On("GetPublishedWorkshop", ctx, int64(10)).Return(workshop, nil)
	resolver := new(mockResolver)
	resolver.On("Resolve", ctx, int64(42), int64(10), uint(8)).Return(policy.ConfigFor(42, 10, 8), nil)
	indexer := new(mockIndexer)
	indexer.On("BlockingIndex", ctx, int64(42), day(10), day(31)).Return(eligibility.NewIndex(periods), nil)

	loader := NewLoader(catalog, resolver, indexer, eligibility.FixedClock{At: now}, nopLogger{})
	cal, err := loader.Load(ctx, 10, day(10), day(31))
	require.NoError(t, err)
	return cal
}

func TestLoad_WorkshopNotFound(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	catalog.On("GetPublishedWorkshop", ctx, int64(10)).Return(nil, catalogservice.ErrWorkshopNotFound)
	loader := NewLoader(catalog, new(mockResolver), new(mockIndexer), eligibility.FixedClock{At: now}, nopLogger{})

	_, err := loader.Load(ctx, 10, day(10), day(10))
	assert.ErrorIs(t, err, ErrWorkshopNotFound)
}

func TestLoad_CatalogDown(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	catalog.On("GetPublishedWorkshop", ctx, int64(10)).Return(nil, errors.New("dial tcp: refused"))
	loader := NewLoader(catalog, new(mockResolver), new(mockIndexer), eligibility.FixedClock{At: now}, nopLogger{})

	_, err := loader.Load(ctx, 10, day(10), day(10))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCheckDate(t *testing.T) {
	policy := domain.DefaultPlatformPolicy()
	policy.AdvanceBookingDays = 14
	policy.MinNoticeBusinessDays = 5
	cal := loadCalendar(t, policy, nil)

	for _, tc := range []struct {
		name string
		date time.Time
		want error
	}{
		{name: "yesterday", date: day(9), want: ErrPastDate},
		{name: "saturday", date: day(15), want: ErrNonOperatingDay},
		{name: "four business days", date: day(13), want: ErrInsufficientNotice},
		{name: "five business days", date: day(14)},
		{name: "last day of window", date: day(24)},
		{name: "beyond window", date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), want: ErrTooFarInAdvance},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := cal.CheckDate(tc.date)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDay_BlockedByArtisan(t *testing.T) {
	cal := loadCalendar(t, domain.DefaultPlatformPolicy(), []domain.UnavailabilityPeriod{
		{Kind: domain.PeriodSingle, StartDate: day(12), Reason: "Marché artisanal", Status: domain.PeriodApproved},
	})

	blocked := cal.Day(day(12))
	assert.False(t, blocked.Selectable)
	assert.Equal(t, ReasonArtisanUnavailable, blocked.Reason)
	assert.Equal(t, "Marché artisanal", blocked.UnavailableReason)

	open := cal.Day(day(11))
	assert.True(t, open.Selectable)
	assert.Empty(t, open.Reason)

	weekend := cal.Day(day(16))
	assert.Equal(t, "non_operating_day", weekend.Reason)
}

func TestPrice(t *testing.T) {
	cal := loadCalendar(t, domain.DefaultPlatformPolicy(), nil)

	total, err := cal.Price(3, false)
	require.NoError(t, err)
	assert.Equal(t, domain.Ariary(135000), total)

	total, err = cal.Price(5, true)
	require.NoError(t, err)
	assert.Equal(t, domain.Ariary(250000), total)

	_, err = cal.Price(2, true)
	assert.ErrorIs(t, err, eligibility.ErrInvalidParticipants)

	cal.Workshop.PrivatizationEnabled = false
	_, err = cal.Price(5, true)
	assert.ErrorIs(t, err, ErrPrivatizationDisabled)
}

func TestSlotAt(t *testing.T) {
	cal := loadCalendar(t, domain.DefaultPlatformPolicy(), nil)
	cal.Catalog.WithOccupancy(day(11), domain.SlotOccupancy{"09:00": 3})
	at := func(s string) *domain.BookingRequest {
		ts := types.TimeString(s)
		return &domain.BookingRequest{WorkshopID: 10, Date: day(11), Time: &ts}
	}

	slot, ok := cal.SlotAt(*at("09:00"))
	require.True(t, ok)
	assert.Equal(t, uint(3), slot.Capacity.Current)
	assert.Equal(t, uint(5), slot.Remaining())

	_, ok = cal.SlotAt(*at("10:00"))
	assert.False(t, ok)
}
