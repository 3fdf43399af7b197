package calendar

import "errors"

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден или не опубликован
	ErrWorkshopNotFound = errors.New("calendar: workshop not found")

	// ErrPastDate возвращается для даты раньше сегодняшнего дня
	ErrPastDate = errors.New("calendar: date is in the past")

	// ErrNonOperatingDay возвращается для нерабочего дня недели
	ErrNonOperatingDay = errors.New("calendar: workshops do not run on this weekday")

	// ErrTooFarInAdvance возвращается, когда дата превышает ограничение advanceBookingDays
	ErrTooFarInAdvance = errors.New("calendar: date is too far in the future")

	// ErrInsufficientNotice возвращается, когда до даты меньше minNoticeBusinessDays рабочих дней
	ErrInsufficientNotice = errors.New("calendar: booking requires more notice")

	// ErrPrivatizationDisabled возвращается, когда мастер-класс нельзя приватизировать
	ErrPrivatizationDisabled = errors.New("calendar: workshop cannot be privatized")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("calendar: internal error")
)

// ReasonCode машиночитаемый код причины, по которой дата недоступна для выбора
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrNonOperatingDay):
		return "non_operating_day"
	case errors.Is(err, ErrTooFarInAdvance):
		return "too_far_in_advance"
	case errors.Is(err, ErrInsufficientNotice):
		return "insufficient_notice"
	default:
		return ""
	}
}
