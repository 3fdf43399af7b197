package domain

import (
	"errors"
	"fmt"

	"github.com/artizaho/workshop-booking/pkg/types"
)

// ErrInvalidSlotTime is returned for a slot time off the 30-minute grid or outside 08:00-18:00
var ErrInvalidSlotTime = errors.New("domain: invalid slot time")

// Capacity participant bounds and current fill of a slot
type Capacity struct {
	Min     uint
	Max     uint
	Current uint
}

// TimeSlot a bookable time of day for a workshop
type TimeSlot struct {
	Time     types.TimeString
	Capacity Capacity
}

// Remaining returns the number of free seats
func (s *TimeSlot) Remaining() uint {
	if s.Capacity.Current >= s.Capacity.Max {
		return 0
	}
	return s.Capacity.Max - s.Capacity.Current
}

// IsEmpty returns true if nobody has booked the slot yet
func (s *TimeSlot) IsEmpty() bool {
	return s.Capacity.Current == 0
}

// ValidateSlotTime checks that t is on the 30-minute grid between 08:00 and 18:00 inclusive
func ValidateSlotTime(t types.TimeString) error {
	minutes, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlotTime, err)
	}

	earliest, _ := types.TimeString(EarliestSlotTime).Minutes()
	latest, _ := types.TimeString(LatestSlotTime).Minutes()

	if minutes < earliest || minutes > latest {
		return fmt.Errorf("%w: %s is outside %s-%s", ErrInvalidSlotTime, t, EarliestSlotTime, LatestSlotTime)
	}
	if minutes%SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: %s is not a multiple of %d minutes", ErrInvalidSlotTime, t, SlotGranularityMinutes)
	}
	return nil
}

// SlotStatus tag of SlotClassification
type SlotStatus string

const (
	SlotFull                  SlotStatus = "full"
	SlotNeedsMoreParticipants SlotStatus = "needs_more_participants"
	SlotAlmostFull            SlotStatus = "almost_full"
	SlotAvailable             SlotStatus = "available"
	SlotArtisanUnavailable    SlotStatus = "artisan_unavailable"
)

// SlotClassification tagged result of an eligibility check.
// Only the payload field matching Status is meaningful:
// Shortfall for needs_more_participants, Remaining for almost_full, Reason for artisan_unavailable.
type SlotClassification struct {
	Status    SlotStatus
	Shortfall uint
	Remaining uint
	Reason    string
}

// Full slot has no free seats
func Full() SlotClassification {
	return SlotClassification{Status: SlotFull}
}

// NeedsMoreParticipants slot is below its minimum
func NeedsMoreParticipants(shortfall uint) SlotClassification {
	return SlotClassification{Status: SlotNeedsMoreParticipants, Shortfall: shortfall}
}

// AlmostFull slot is close to its maximum
func AlmostFull(remaining uint) SlotClassification {
	return SlotClassification{Status: SlotAlmostFull, Remaining: remaining}
}

// Available slot has room and has reached its minimum
func Available() SlotClassification {
	return SlotClassification{Status: SlotAvailable}
}

// ArtisanUnavailable the artisan blocked the day
func ArtisanUnavailable(reason string) SlotClassification {
	return SlotClassification{Status: SlotArtisanUnavailable, Reason: reason}
}

// IsBookable returns true if a new participant may still join
func (c SlotClassification) IsBookable() bool {
	switch c.Status {
	case SlotAvailable, SlotAlmostFull, SlotNeedsMoreParticipants:
		return true
	default:
		return false
	}
}
