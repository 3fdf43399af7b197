package evaluate_booking

import (
	"errors"

	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = calendar.ErrWorkshopNotFound

	// ErrPrivatizationDisabled возвращается, когда мастер-класс нельзя приватизировать
	ErrPrivatizationDisabled = calendar.ErrPrivatizationDisabled

	// ErrInvalidParticipants возвращается, когда число участников вне границ приватизации
	ErrInvalidParticipants = eligibility.ErrInvalidParticipants

	// ErrUnknownTimeSlot возвращается, когда время не входит в сетку слотов дня
	ErrUnknownTimeSlot = eligibility.ErrUnknownTimeSlot

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("evaluate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("evaluate_booking: internal error")
)
