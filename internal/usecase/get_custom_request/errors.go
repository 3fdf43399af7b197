package get_custom_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("get_custom_request: request not found")

	// ErrAccessDenied возвращается, когда заявку запрашивает не ее автор
	ErrAccessDenied = errors.New("get_custom_request: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_custom_request: internal error")
)
