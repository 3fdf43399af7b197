package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

const testWorkshopID int64 = 42

// wednesday 2024-08-14, mid-afternoon in Antananarivo
var testNow = time.Date(2024, 8, 14, 15, 0, 0, 0, time.FixedZone("EAT", 3*60*60))

func testConfig() *domain.WorkshopSlotsConfig {
	return domain.DefaultPlatformPolicy().ConfigFor(7, testWorkshopID, 12)
}

func TestCatalog_SlotsFor(t *testing.T) {
	date := day(2024, 8, 20)
	catalog := NewCatalog(testWorkshopID, testConfig(), nil, FixedClock{At: testNow}).
		WithOccupancy(date, domain.SlotOccupancy{"09:00": 2, "11:00": 6, "16:00": 12})

	slots := catalog.SlotsFor(testWorkshopID, date)
	require.Len(t, slots, 4)

	want := []struct {
		time    types.TimeString
		current uint
	}{
		{"09:00", 2}, {"11:00", 6}, {"14:00", 0}, {"16:00", 12},
	}
	for i, w := range want {
		assert.Equal(t, w.time, slots[i].Time)
		assert.Equal(t, w.current, slots[i].Capacity.Current)
		assert.Equal(t, uint(4), slots[i].Capacity.Min)
		assert.Equal(t, uint(12), slots[i].Capacity.Max)
	}

	// another day has no bookings yet
	other := catalog.SlotsFor(testWorkshopID, day(2024, 8, 21))
	require.Len(t, other, 4)
	assert.Zero(t, other[0].Capacity.Current)
}

func TestCatalog_SlotsForClampsOverbookedLedger(t *testing.T) {
	date := day(2024, 8, 20)
	catalog := NewCatalog(testWorkshopID, testConfig(), nil, FixedClock{At: testNow}).
		WithOccupancy(date, domain.SlotOccupancy{"09:00": 15})

	slots := catalog.SlotsFor(testWorkshopID, date)
	assert.Equal(t, uint(12), slots[0].Capacity.Current)
}

func TestCatalog_SlotsForBlockedDayOrOtherWorkshop(t *testing.T) {
	date := day(2024, 8, 20)
	index := NewIndex([]domain.UnavailabilityPeriod{single(date, "Congé")})
	catalog := NewCatalog(testWorkshopID, testConfig(), index, FixedClock{At: testNow})

	assert.Empty(t, catalog.SlotsFor(testWorkshopID, date))
	assert.Empty(t, catalog.SlotsFor(testWorkshopID+1, day(2024, 8, 21)))
	assert.Len(t, catalog.SlotsFor(testWorkshopID, day(2024, 8, 21)), 4)
}

func TestCatalog_IsDateSelectable(t *testing.T) {
	yesterday := day(2024, 8, 13)
	nextSaturday := day(2024, 8, 17)
	nextTuesday := day(2024, 8, 20)
	blockedThursday := day(2024, 8, 22)

	index := NewIndex([]domain.UnavailabilityPeriod{single(blockedThursday, "Salon")})
	catalog := NewCatalog(testWorkshopID, testConfig(), index, FixedClock{At: testNow})

	assert.False(t, catalog.IsDateSelectable(yesterday))
	assert.False(t, catalog.IsDateSelectable(nextSaturday))
	assert.True(t, catalog.IsDateSelectable(nextTuesday))
	assert.False(t, catalog.IsDateSelectable(blockedThursday))

	// today is still selectable
	assert.True(t, catalog.IsDateSelectable(day(2024, 8, 14)))
}

func TestCatalog_SelectabilityConditionsAreIndependent(t *testing.T) {
	index := NewIndex([]domain.UnavailabilityPeriod{single(day(2024, 8, 22), "Salon")})
	catalog := NewCatalog(testWorkshopID, testConfig(), index, FixedClock{At: testNow})

	// past weekday, not blocked
	assert.True(t, catalog.IsPast(day(2024, 8, 12)))
	assert.False(t, catalog.IsNonOperatingDay(day(2024, 8, 12)))
	assert.False(t, catalog.IsBlocked(day(2024, 8, 12)))

	// future weekend, not blocked
	assert.False(t, catalog.IsPast(day(2024, 8, 18)))
	assert.True(t, catalog.IsNonOperatingDay(day(2024, 8, 18)))
	assert.False(t, catalog.IsBlocked(day(2024, 8, 18)))

	// future weekday, blocked
	assert.False(t, catalog.IsPast(day(2024, 8, 22)))
	assert.False(t, catalog.IsNonOperatingDay(day(2024, 8, 22)))
	assert.True(t, catalog.IsBlocked(day(2024, 8, 22)))
}

func TestCatalog_WeekendOverride(t *testing.T) {
	cfg := testConfig()
	cfg.NonOperatingWeekdays = []time.Weekday{time.Monday}
	catalog := NewCatalog(testWorkshopID, cfg, nil, FixedClock{At: testNow})

	assert.True(t, catalog.IsDateSelectable(day(2024, 8, 17)))
	assert.False(t, catalog.IsDateSelectable(day(2024, 8, 19)))
}
