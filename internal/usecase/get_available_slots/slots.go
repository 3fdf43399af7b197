package get_available_slots

import (
	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
)

// classifySlots переводит слоты каталога в модель ответа
// Порядок слотов совпадает с порядком в конфигурации
func classifySlots(slots []domain.TimeSlot, policy eligibility.Classifier) []Slot {
	result := make([]Slot, len(slots))

	for i, slot := range slots {
		result[i] = Slot{
			StartTime:       slot.Time,
			MinParticipants: slot.Capacity.Min,
			MaxParticipants: slot.Capacity.Max,
			Current:         slot.Capacity.Current,
			Remaining:       slot.Remaining(),
			Classification:  policy.Classify(slot),
		}
	}

	return result
}
