package eligibility

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func single(start time.Time, reason string) domain.UnavailabilityPeriod {
	return domain.UnavailabilityPeriod{
		ID:        uuid.New(),
		Kind:      domain.PeriodSingle,
		StartDate: start,
		Reason:    reason,
		Status:    domain.PeriodApproved,
	}
}

func rangePeriod(start, end time.Time, reason string) domain.UnavailabilityPeriod {
	return domain.UnavailabilityPeriod{
		ID:        uuid.New(),
		Kind:      domain.PeriodRange,
		StartDate: start,
		EndDate:   &end,
		Reason:    reason,
		Status:    domain.PeriodApproved,
	}
}

func TestIndex_RangeIsInclusive(t *testing.T) {
	start, end := day(2024, 8, 10), day(2024, 8, 20)
	index := NewIndex([]domain.UnavailabilityPeriod{rangePeriod(start, end, "Salon artisanal")})

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		assert.True(t, index.IsBlocked(d), "expected %s blocked", d.Format(domain.DateFormat))
	}
	assert.False(t, index.IsBlocked(start.AddDate(0, 0, -1)))
	assert.False(t, index.IsBlocked(end.AddDate(0, 0, 1)))
}

func TestIndex_SingleDay(t *testing.T) {
	s := day(2024, 8, 15)
	index := NewIndex([]domain.UnavailabilityPeriod{single(s, "Congé")})

	assert.True(t, index.IsBlocked(s))
	assert.False(t, index.IsBlocked(s.AddDate(0, 0, -1)))
	assert.False(t, index.IsBlocked(s.AddDate(0, 0, 1)))
}

func TestIndex_IgnoresTimeOfDay(t *testing.T) {
	index := NewIndex([]domain.UnavailabilityPeriod{
		rangePeriod(day(2024, 8, 10), time.Date(2024, 8, 12, 9, 0, 0, 0, time.UTC), "Formation"),
	})

	// late evening of the last day must still be blocked
	assert.True(t, index.IsBlocked(time.Date(2024, 8, 12, 23, 59, 0, 0, time.UTC)))

	// the calendar day is read in the value's own zone
	antananarivo := time.FixedZone("EAT", 3*60*60)
	assert.True(t, index.IsBlocked(time.Date(2024, 8, 10, 1, 0, 0, 0, antananarivo)))
	assert.False(t, index.IsBlocked(time.Date(2024, 8, 13, 0, 30, 0, 0, antananarivo)))
}

func TestIndex_RangeWithoutEndCoversStartOnly(t *testing.T) {
	p := rangePeriod(day(2024, 8, 10), day(2024, 8, 10), "Marché")
	p.EndDate = nil
	index := NewIndex([]domain.UnavailabilityPeriod{p})

	assert.True(t, index.IsBlocked(day(2024, 8, 10)))
	assert.False(t, index.IsBlocked(day(2024, 8, 11)))
}

func TestIndex_ReasonForReturnsFirstInInputOrder(t *testing.T) {
	index := NewIndex([]domain.UnavailabilityPeriod{
		rangePeriod(day(2024, 8, 10), day(2024, 8, 20), "Vacances"),
		single(day(2024, 8, 15), "Fête de l'Assomption"),
	})

	reason, ok := index.ReasonFor(day(2024, 8, 15))
	require.True(t, ok)
	assert.Equal(t, "Vacances", reason)

	reversed := NewIndex([]domain.UnavailabilityPeriod{
		single(day(2024, 8, 15), "Fête de l'Assomption"),
		rangePeriod(day(2024, 8, 10), day(2024, 8, 20), "Vacances"),
	})
	reason, ok = reversed.ReasonFor(day(2024, 8, 15))
	require.True(t, ok)
	assert.Equal(t, "Fête de l'Assomption", reason)

	_, ok = index.ReasonFor(day(2024, 9, 1))
	assert.False(t, ok)
}

func TestIndex_Upcoming(t *testing.T) {
	past := single(day(2024, 7, 1), "passé")
	late := single(day(2024, 9, 5), "septembre")
	early := rangePeriod(day(2024, 8, 20), day(2024, 8, 25), "août")
	sameDayFirst := single(day(2024, 9, 5), "septembre bis")
	today := single(day(2024, 8, 14), "aujourd'hui")

	index := NewIndex([]domain.UnavailabilityPeriod{past, late, early, sameDayFirst, today})

	got := index.Upcoming(day(2024, 8, 14), 10)
	require.Len(t, got, 4)
	assert.Equal(t, today.ID, got[0].ID)
	assert.Equal(t, early.ID, got[1].ID)
	assert.Equal(t, late.ID, got[2].ID)
	assert.Equal(t, sameDayFirst.ID, got[3].ID)

	limited := index.Upcoming(day(2024, 8, 14), 2)
	require.Len(t, limited, 2)
	assert.Equal(t, today.ID, limited[0].ID)
	assert.Equal(t, early.ID, limited[1].ID)

	assert.Empty(t, index.Upcoming(day(2024, 8, 14), 0))
}

func TestIndex_SnapshotIsIsolatedFromCaller(t *testing.T) {
	periods := []domain.UnavailabilityPeriod{single(day(2024, 8, 15), "Congé")}
	index := NewIndex(periods)

	periods[0].StartDate = day(2024, 8, 16)

	assert.True(t, index.IsBlocked(day(2024, 8, 15)))
	assert.Equal(t, 1, index.Len())
}
