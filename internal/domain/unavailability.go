package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PeriodKind distinguishes a single blocked day from an inclusive date range
type PeriodKind string

const (
	PeriodSingle PeriodKind = "single"
	PeriodRange  PeriodKind = "range"
)

// PeriodStatus moderation status of an unavailability period
type PeriodStatus string

const (
	PeriodPendingApproval PeriodStatus = "pending_approval"
	PeriodApproved        PeriodStatus = "approved"
	PeriodRejected        PeriodStatus = "rejected"
)

var (
	// ErrInvalidPeriodKind is returned for a kind other than single or range
	ErrInvalidPeriodKind = errors.New("domain: invalid unavailability period kind")

	// ErrPeriodEndRequired is returned when a range period has no end date
	ErrPeriodEndRequired = errors.New("domain: range period requires an end date")

	// ErrPeriodEndBeforeStart is returned when a range ends before it starts
	ErrPeriodEndBeforeStart = errors.New("domain: period end date is before start date")
)

// UnavailabilityPeriod an artisan-declared block of calendar days
type UnavailabilityPeriod struct {
	ID        uuid.UUID
	ArtisanID int64
	Kind      PeriodKind
	StartDate time.Time
	EndDate   *time.Time // required iff Kind == PeriodRange
	Reason    string     // display-only
	Status    PeriodStatus

	AdminNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the kind/end-date invariant
func (p *UnavailabilityPeriod) Validate() error {
	switch p.Kind {
	case PeriodSingle:
		return nil
	case PeriodRange:
		if p.EndDate == nil {
			return ErrPeriodEndRequired
		}
		if DateOf(*p.EndDate).Before(DateOf(p.StartDate)) {
			return ErrPeriodEndBeforeStart
		}
		return nil
	default:
		return ErrInvalidPeriodKind
	}
}

// LastDay returns the last blocked day. A range without an end date covers only its start day.
func (p *UnavailabilityPeriod) LastDay() time.Time {
	if p.Kind == PeriodRange && p.EndDate != nil {
		return DateOf(*p.EndDate)
	}
	return DateOf(p.StartDate)
}

// Covers reports whether date falls inside the period, at day granularity
func (p *UnavailabilityPeriod) Covers(date time.Time) bool {
	day := DateOf(date)
	start := DateOf(p.StartDate)

	if p.Kind == PeriodSingle {
		return day.Equal(start)
	}
	return !day.Before(start) && !day.After(p.LastDay())
}

// IsApproved returns true if the period blocks bookings
func (p *UnavailabilityPeriod) IsApproved() bool {
	return p.Status == PeriodApproved
}

// ValidPeriodKind reports whether s names a known kind
func ValidPeriodKind(s string) bool {
	return s == string(PeriodSingle) || s == string(PeriodRange)
}

// ValidPeriodStatus reports whether s names a known status
func ValidPeriodStatus(s string) bool {
	switch PeriodStatus(s) {
	case PeriodPendingApproval, PeriodApproved, PeriodRejected:
		return true
	}
	return false
}

// UnavailabilityFilter фильтр выборки периодов мастера
// From/To задают окно: возвращаются периоды, пересекающие [From, To]
type UnavailabilityFilter struct {
	ArtisanID int64         // Обязательный параметр
	Status    *PeriodStatus // Фильтр по статусу модерации (опционально)
	From      *time.Time    // Начало окна (опционально)
	To        *time.Time    // Конец окна (опционально)
}
