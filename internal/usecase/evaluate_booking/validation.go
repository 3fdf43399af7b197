package evaluate_booking

import "github.com/artizaho/workshop-booking/pkg/validation"

// validateRequest валидирует входные данные запроса
// Приватная сессия проверяется только с указанным временем
func validateRequest(req *Request) error {
	return validation.Struct(req, ErrInvalidInput)
}
