package create_booking

import (
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	return validation.Struct(req, ErrInvalidInput)
}

// checkSeats проверяет, что группа помещается в слот
// Приватная сессия требует пустого слота
func checkSeats(slot domain.TimeSlot, participants uint, isPrivate bool) error {
	if isPrivate {
		if !slot.IsEmpty() {
			return fmt.Errorf("%w: private session needs an empty slot, %d already booked",
				ErrSlotNotAvailable, slot.Capacity.Current)
		}
		return nil
	}

	if slot.Capacity.Current+participants > slot.Capacity.Max {
		return fmt.Errorf("%w: %d seats left, %d requested", ErrSlotNotAvailable, slot.Remaining(), participants)
	}

	return nil
}
