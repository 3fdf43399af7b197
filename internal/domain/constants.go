package domain

import "time"

// Default configuration values
const (
	DefaultMinParticipants       = 4
	DefaultMaxParticipants       = 12
	DefaultAlmostFullThreshold   = 2
	DefaultAdvanceBookingDays    = 0 // 0 = unlimited
	DefaultMinNoticeBusinessDays = 0
)

// DefaultNonOperatingWeekdays weekdays on which workshops do not run unless configured otherwise
var DefaultNonOperatingWeekdays = []time.Weekday{time.Saturday, time.Sunday}

// Slot grid
const (
	SlotGranularityMinutes = 30
	EarliestSlotTime       = "08:00"
	LatestSlotTime         = "18:00"
)

// Business validation constants
const (
	MaxParticipantsLimit        = 50
	MaxAlmostFullThreshold      = 10
	MaxAdvanceBookingDays       = 365
	MaxMinNoticeBusinessDays    = 30
	MaxReasonLength             = 300
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxUpcomingLimit            = 100
	DefaultUpcomingLimit        = 5
	DefaultCalendarDays         = 31
	MaxCalendarDays             = 62
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses bookings in these statuses do not occupy seats
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByArtisan,
	StatusNoShow,
}

// ActiveStatuses bookings in these statuses count towards TimeSlot.Current
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
