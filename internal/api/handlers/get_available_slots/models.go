package get_available_slots

import (
	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/domain"
	getAvailableSlots "github.com/artizaho/workshop-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// Для недоступного дня slots пуст, а reason объясняет причину
type AvailableSlotsResponse struct {
	WorkshopID        int64           `json:"workshopId"`
	Date              string          `json:"date"`
	Slots             []AvailableSlot `json:"slots"`
	Reason            string          `json:"reason,omitempty"`
	UnavailableReason string          `json:"unavailableReason,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string                  `json:"startTime"`
	MinParticipants uint                    `json:"minParticipants"`
	MaxParticipants uint                    `json:"maxParticipants"`
	Current         uint                    `json:"current"`
	Remaining       uint                    `json:"remaining"`
	Classification  handlers.Classification `json:"classification"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			MinParticipants: slot.MinParticipants,
			MaxParticipants: slot.MaxParticipants,
			Current:         slot.Current,
			Remaining:       slot.Remaining,
			Classification:  handlers.NewClassification(slot.Classification),
		}
	}

	return &AvailableSlotsResponse{
		WorkshopID:        resp.WorkshopID,
		Date:              resp.Date.Format(domain.DateFormat),
		Slots:             slots,
		Reason:            resp.Reason,
		UnavailableReason: resp.UnavailableReason,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(workshopID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		WorkshopID: workshopID,
		Date:       date,
	}, nil
}
