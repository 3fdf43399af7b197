package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/pkg/types"
)

// CustomRequestStatus status of an out-of-calendar booking request
type CustomRequestStatus string

const (
	CustomRequestPending   CustomRequestStatus = "pending"
	CustomRequestConfirmed CustomRequestStatus = "confirmed"
	CustomRequestRejected  CustomRequestStatus = "rejected"
	CustomRequestExpired   CustomRequestStatus = "expired"
)

// CustomBookingRequest a booking request outside the published slot catalog.
// It is never rejected automatically; a human confirms or rejects it.
type CustomBookingRequest struct {
	ID                  uuid.UUID
	WorkshopID          int64
	UserID              int64
	PreferredDate       time.Time
	PreferredTime       *types.TimeString
	AlternativeDate     *time.Time
	AlternativeTime     *types.TimeString
	Participants        uint
	IsPrivate           bool
	EstimatedPrice      *Ariary
	SpecialRequirements *string
	ContactEmail        string
	ContactPhone        *string
	Message             *string
	HasConflict         bool
	Status              CustomRequestStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ConflictQuery the dates of a custom request checked against the artisan's calendar
type ConflictQuery struct {
	PreferredDate   time.Time
	PreferredTime   *types.TimeString
	AlternativeDate *time.Time
	AlternativeTime *types.TimeString
}

// ConflictQuery extracts the date part of the request
func (r *CustomBookingRequest) ConflictQuery() ConflictQuery {
	return ConflictQuery{
		PreferredDate:   r.PreferredDate,
		PreferredTime:   r.PreferredTime,
		AlternativeDate: r.AlternativeDate,
		AlternativeTime: r.AlternativeTime,
	}
}

// LatestDate returns the later of the preferred and alternative dates
func (r *CustomBookingRequest) LatestDate() time.Time {
	latest := DateOf(r.PreferredDate)
	if r.AlternativeDate != nil && DateOf(*r.AlternativeDate).After(latest) {
		latest = DateOf(*r.AlternativeDate)
	}
	return latest
}

// EarliestDate returns the earlier of the preferred and alternative dates
func (r *CustomBookingRequest) EarliestDate() time.Time {
	earliest := DateOf(r.PreferredDate)
	if r.AlternativeDate != nil && DateOf(*r.AlternativeDate).Before(earliest) {
		earliest = DateOf(*r.AlternativeDate)
	}
	return earliest
}

// CanTransitionTo reports whether the artisan may move the request to next.
// Only a pending request is reviewed; expiry is done by the scheduler.
func (r *CustomBookingRequest) CanTransitionTo(next CustomRequestStatus) bool {
	return r.Status == CustomRequestPending &&
		(next == CustomRequestConfirmed || next == CustomRequestRejected)
}

// ValidCustomRequestStatus reports whether s names a known status
func ValidCustomRequestStatus(s string) bool {
	switch CustomRequestStatus(s) {
	case CustomRequestPending, CustomRequestConfirmed, CustomRequestRejected, CustomRequestExpired:
		return true
	}
	return false
}
