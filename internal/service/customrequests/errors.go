package customrequests

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("custom request not found")

	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден
	ErrWorkshopNotFound = errors.New("workshop not found")

	// ErrAccessDenied возвращается, когда пользователь не мастер мастер-класса
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается, когда заявка уже рассмотрена или истекла
	ErrInvalidTransition = errors.New("invalid custom request status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
