package eligibility

import (
	"fmt"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Blocker is the read side of an unavailability index
type Blocker interface {
	IsBlocked(date time.Time) bool
	ReasonFor(date time.Time) (string, bool)
}

// SlotSource lists the candidate slots of a workshop for a day
type SlotSource interface {
	SlotsFor(workshopID int64, date time.Time) []domain.TimeSlot
}

// Classifier maps a slot to its fill classification
type Classifier interface {
	Classify(slot domain.TimeSlot) domain.SlotClassification
}

// Evaluate classifies a booking request.
//
// A blocked day short-circuits to ArtisanUnavailable without looking at slots.
// Otherwise the slot matching req.Time exactly is classified by policy; a time absent
// from the catalog yields ErrUnknownTimeSlot. A date-only request (nil Time) is
// Available when at least one slot of the day is not full, Full when all are, and
// ErrUnknownTimeSlot when the day has no slots at all.
func Evaluate(req domain.BookingRequest, catalog SlotSource, index Blocker, policy Classifier) (domain.SlotClassification, error) {
	if index.IsBlocked(req.Date) {
		reason, _ := index.ReasonFor(req.Date)
		return domain.ArtisanUnavailable(reason), nil
	}

	slots := catalog.SlotsFor(req.WorkshopID, req.Date)

	if req.Time == nil {
		if len(slots) == 0 {
			return domain.SlotClassification{}, fmt.Errorf("%w: no slots on %s",
				ErrUnknownTimeSlot, req.Date.Format(domain.DateFormat))
		}
		for _, slot := range slots {
			if policy.Classify(slot).Status != domain.SlotFull {
				return domain.Available(), nil
			}
		}
		return domain.Full(), nil
	}

	for _, slot := range slots {
		if slot.Time.Equal(*req.Time) {
			return policy.Classify(slot), nil
		}
	}

	return domain.SlotClassification{}, fmt.Errorf("%w: %s on %s",
		ErrUnknownTimeSlot, req.Time.String(), req.Date.Format(domain.DateFormat))
}

// DetectConflict reports whether the preferred date, or the alternative date when given,
// is blocked. It is a warning for human follow-up and never rejects anything.
func DetectConflict(query domain.ConflictQuery, index Blocker) bool {
	if index.IsBlocked(query.PreferredDate) {
		return true
	}
	return query.AlternativeDate != nil && index.IsBlocked(*query.AlternativeDate)
}
