package submit_custom_request

import (
	"errors"

	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = calendar.ErrWorkshopNotFound

	// ErrPastDate возвращается, когда желаемая или альтернативная дата уже прошла
	ErrPastDate = calendar.ErrPastDate

	// ErrPrivatizationDisabled возвращается, когда мастер-класс нельзя приватизировать
	ErrPrivatizationDisabled = calendar.ErrPrivatizationDisabled

	// ErrInvalidParticipants возвращается, когда число участников вне границ приватизации
	ErrInvalidParticipants = eligibility.ErrInvalidParticipants

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_custom_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_custom_request: internal error")
)
