package eligibility

import (
	"sort"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Index answers whether an artisan is unavailable on a given day.
// It is an immutable snapshot: rebuild it when the periods change.
type Index struct {
	periods []domain.UnavailabilityPeriod
}

// NewIndex builds an index over periods, keeping their input order
func NewIndex(periods []domain.UnavailabilityPeriod) *Index {
	snapshot := make([]domain.UnavailabilityPeriod, len(periods))
	copy(snapshot, periods)
	return &Index{periods: snapshot}
}

// IsBlocked reports whether date falls within any period
func (i *Index) IsBlocked(date time.Time) bool {
	_, ok := i.match(date)
	return ok
}

// ReasonFor returns the reason of the first matching period in input order
func (i *Index) ReasonFor(date time.Time) (string, bool) {
	p, ok := i.match(date)
	if !ok {
		return "", false
	}
	return p.Reason, true
}

// Upcoming returns periods starting on or after from, ascending by start date, at most limit of them.
// Periods sharing a start date keep their input order.
func (i *Index) Upcoming(from time.Time, limit uint) []domain.UnavailabilityPeriod {
	day := domain.DateOf(from)

	upcoming := make([]domain.UnavailabilityPeriod, 0, len(i.periods))
	for _, p := range i.periods {
		if !domain.DateOf(p.StartDate).Before(day) {
			upcoming = append(upcoming, p)
		}
	}

	sort.SliceStable(upcoming, func(a, b int) bool {
		return domain.DateOf(upcoming[a].StartDate).Before(domain.DateOf(upcoming[b].StartDate))
	})

	if uint(len(upcoming)) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Len returns the number of indexed periods
func (i *Index) Len() int {
	return len(i.periods)
}

func (i *Index) match(date time.Time) (*domain.UnavailabilityPeriod, bool) {
	for idx := range i.periods {
		if i.periods[idx].Covers(date) {
			return &i.periods[idx], true
		}
	}
	return nil, false
}
