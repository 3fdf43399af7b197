package eligibility

import "errors"

var (
	// ErrInvalidParticipants is returned when a privatization headcount is outside [min, max]
	ErrInvalidParticipants = errors.New("eligibility: participants outside privatization bounds")

	// ErrUnknownTimeSlot is returned when the requested time is not in the catalog for that date
	ErrUnknownTimeSlot = errors.New("eligibility: unknown time slot")
)
