package get_available_slots

import (
	"errors"

	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = calendar.ErrWorkshopNotFound

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
