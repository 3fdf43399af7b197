package get_available_slots

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	WorkshopID int64     `validate:"gt=0"`
	Date       time.Time `validate:"required"` // Дата (без времени)
}

// Response модель ответа со списком слотов
// Для недоступного дня Slots пуст, а Reason содержит код причины
type Response struct {
	WorkshopID        int64
	Date              time.Time
	Slots             []Slot
	Reason            string  // past_date, non_operating_day, too_far_in_advance, insufficient_notice, artisan_unavailable
	UnavailableReason string  // Причина, указанная мастером
}

// Slot модель временного слота с классификацией
type Slot struct {
	StartTime       types.TimeString
	MinParticipants uint
	MaxParticipants uint
	Current         uint
	Remaining       uint
	Classification  domain.SlotClassification
}
