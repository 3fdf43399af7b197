package catalogservice

import "errors"

var (
	// ErrWorkshopNotFound возвращается, когда мастер-класс не найден в каталоге
	ErrWorkshopNotFound = errors.New("workshop not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда каталог недоступен (сеть, таймаут, 5xx)
	ErrServiceUnavailable = errors.New("catalogservice unavailable")
)
