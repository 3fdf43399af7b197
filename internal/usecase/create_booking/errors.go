package create_booking

import (
	"errors"

	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = calendar.ErrWorkshopNotFound

	// ErrPastDate возвращается для даты раньше сегодняшнего дня
	ErrPastDate = calendar.ErrPastDate

	// ErrNonOperatingDay возвращается для нерабочего дня недели
	ErrNonOperatingDay = calendar.ErrNonOperatingDay

	// ErrTooFarInAdvance возвращается, когда дата превышает ограничение advanceBookingDays
	ErrTooFarInAdvance = calendar.ErrTooFarInAdvance

	// ErrInsufficientNotice возвращается, когда до даты меньше minNoticeBusinessDays рабочих дней
	ErrInsufficientNotice = calendar.ErrInsufficientNotice

	// ErrPrivatizationDisabled возвращается, когда мастер-класс нельзя приватизировать
	ErrPrivatizationDisabled = calendar.ErrPrivatizationDisabled

	// ErrInvalidParticipants возвращается, когда число участников вне границ приватизации
	ErrInvalidParticipants = eligibility.ErrInvalidParticipants

	// ErrArtisanUnavailable возвращается, когда мастер заблокировал дату
	ErrArtisanUnavailable = errors.New("create_booking: artisan is unavailable on this date")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов мастер-класса
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
