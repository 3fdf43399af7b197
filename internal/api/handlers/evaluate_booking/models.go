package evaluate_booking

import (
	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/domain"
	evaluateBooking "github.com/artizaho/workshop-booking/internal/usecase/evaluate_booking"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// EvaluateRequest HTTP request model
type EvaluateRequest struct {
	Date         string  `json:"date"`           // "2026-08-20"
	Time         *string `json:"time,omitempty"` // "14:00", без времени проверяется весь день
	Participants uint    `json:"participants"`
	IsPrivate    bool    `json:"isPrivate"`
}

// SlotResponse заполненность слота запроса
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	MinParticipants uint   `json:"minParticipants"`
	MaxParticipants uint   `json:"maxParticipants"`
	Current         uint   `json:"current"`
	Remaining       uint   `json:"remaining"`
}

// EvaluateResponse HTTP response model
type EvaluateResponse struct {
	WorkshopID     int64                   `json:"workshopId"`
	Date           string                  `json:"date"`
	Time           *string                 `json:"time,omitempty"`
	Classification handlers.Classification `json:"classification"`
	Panel          string                  `json:"panel"`
	ClosedReason   string                  `json:"closedReason,omitempty"`
	Slot           *SlotResponse           `json:"slot,omitempty"`
	Fits           bool                    `json:"fits"`
	Price          *int64                  `json:"price,omitempty"` // Ариари
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EvaluateRequest) ToUseCaseRequest(workshopID int64) (*evaluateBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &evaluateBooking.Request{
		WorkshopID:   workshopID,
		Date:         date,
		Participants: r.Participants,
		IsPrivate:    r.IsPrivate,
	}

	if r.Time != nil && *r.Time != "" {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, errInvalidTime
		}
		req.Time = &t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *evaluateBooking.Response) *EvaluateResponse {
	out := &EvaluateResponse{
		WorkshopID:     resp.WorkshopID,
		Date:           resp.Date.Format(domain.DateFormat),
		Classification: handlers.NewClassification(resp.Classification),
		Panel:          string(resp.Panel),
		ClosedReason:   resp.ClosedReason,
		Fits:           resp.Fits,
	}

	if resp.Time != nil {
		t := resp.Time.String()
		out.Time = &t
	}
	if resp.Slot != nil {
		out.Slot = &SlotResponse{
			StartTime:       resp.Slot.Time.String(),
			MinParticipants: resp.Slot.Capacity.Min,
			MaxParticipants: resp.Slot.Capacity.Max,
			Current:         resp.Slot.Capacity.Current,
			Remaining:       resp.Slot.Remaining(),
		}
	}
	if resp.Price != nil {
		price := int64(*resp.Price)
		out.Price = &price
	}

	return out
}
