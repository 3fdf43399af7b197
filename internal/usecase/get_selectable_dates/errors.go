package get_selectable_dates

import (
	"errors"

	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = calendar.ErrWorkshopNotFound

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_selectable_dates: invalid input data")
)
