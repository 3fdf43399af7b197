package domain

import (
	"time"

	"github.com/artizaho/workshop-booking/pkg/types"
)

// Ariary amount in Malagasy ariary; the currency has no minor unit in circulation so amounts are whole
type Ariary int64

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByArtisan BookingStatus = "cancelled_by_artisan"
	StatusNoShow             BookingStatus = "no_show"
)

// BookingRequest the query object of the eligibility engine
type BookingRequest struct {
	WorkshopID   int64
	Date         time.Time
	Time         *types.TimeString // nil for date-only checks
	Participants uint
	IsPrivate    bool
}

// PrivatizationOption exclusive-booking terms of a workshop
type PrivatizationOption struct {
	MinParticipants     uint
	MaxParticipants     uint
	BasePrice           Ariary
	PricePerParticipant Ariary
	Description         string
}

// Booking a row of the booking ledger
type Booking struct {
	ID           int64
	UserID       int64
	WorkshopID   int64
	ArtisanID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Participants uint
	IsPrivate    bool
	Status       BookingStatus

	// Denormalized data for history
	WorkshopTitle string
	TotalPrice    Ariary
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies seats
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByArtisan &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByArtisan
}

// WorkshopBookingsFilter фильтр для выборки бронирований мастерской
type WorkshopBookingsFilter struct {
	WorkshopID      int64             // Обязательный параметр
	StartDate       *time.Time        // Начало периода (опционально)
	EndDate         *time.Time        // Конец периода (опционально)
	StartTime       *types.TimeString // Конкретный слот (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли отменённые и no-show
}

// SlotOccupancy number of booked participants per slot time on one day
type SlotOccupancy map[types.TimeString]uint

// BookingPanel view state the booking UI should display for an evaluation.
// Replaces independent show/hide flags with a single tag.
type BookingPanel string

const (
	PanelSlots         BookingPanel = "slots"
	PanelCustomRequest BookingPanel = "custom_request"
	PanelUnavailable   BookingPanel = "unavailable"
	PanelClosed        BookingPanel = "closed"
)

// PanelFor maps a classification to the panel the UI should show
func PanelFor(c SlotClassification) BookingPanel {
	switch c.Status {
	case SlotArtisanUnavailable:
		return PanelUnavailable
	case SlotFull:
		return PanelCustomRequest
	default:
		return PanelSlots
	}
}

// CanTransitionTo reports whether the artisan may move the booking to next.
// Cancellation has its own path and is not a transition here.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow
	default:
		return false
	}
}

// ValidBookingStatus reports whether s names a known status
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByUser, StatusCancelledByArtisan, StatusNoShow:
		return true
	}
	return false
}

// PrivatizedOccupancy seats counted for a slot holding an active private booking.
// It exceeds every slot maximum, so the catalog clamps the slot to full.
const PrivatizedOccupancy = MaxParticipantsLimit

// OccupancyOf sums active participants per slot time.
// A private booking closes its slot to everyone else.
func OccupancyOf(bookings []*Booking) SlotOccupancy {
	occupancy := make(SlotOccupancy)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.IsPrivate {
			occupancy[b.StartTime] = PrivatizedOccupancy
			continue
		}
		if occupancy[b.StartTime] < PrivatizedOccupancy {
			occupancy[b.StartTime] += b.Participants
		}
	}
	return occupancy
}
