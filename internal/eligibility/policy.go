package eligibility

import (
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Policy classifies slot fill levels and prices privatized sessions
type Policy struct {
	// AlmostFullThreshold slots with at most this many free seats are reported as almost full
	AlmostFullThreshold uint
}

// NewPolicy returns a policy with the given almost-full threshold
func NewPolicy(almostFullThreshold uint) Policy {
	return Policy{AlmostFullThreshold: almostFullThreshold}
}

// DefaultPolicy uses domain.DefaultAlmostFullThreshold
func DefaultPolicy() Policy {
	return NewPolicy(domain.DefaultAlmostFullThreshold)
}

// Classify partitions a slot into exactly one of full, needs more participants,
// available and almost full. The checks run in that order.
func (p Policy) Classify(slot domain.TimeSlot) domain.SlotClassification {
	c := slot.Capacity

	switch {
	case c.Current >= c.Max:
		return domain.Full()
	case c.Current < c.Min:
		return domain.NeedsMoreParticipants(c.Min - c.Current)
	case c.Max-c.Current <= p.AlmostFullThreshold:
		return domain.AlmostFull(c.Max - c.Current)
	default:
		return domain.Available()
	}
}

// PrivatizedTotal returns basePrice + participants * pricePerParticipant
func (p Policy) PrivatizedTotal(option domain.PrivatizationOption, participants uint) (domain.Ariary, error) {
	if participants < option.MinParticipants || participants > option.MaxParticipants {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidParticipants, participants, option.MinParticipants, option.MaxParticipants)
	}
	return option.BasePrice + domain.Ariary(participants)*option.PricePerParticipant, nil
}
