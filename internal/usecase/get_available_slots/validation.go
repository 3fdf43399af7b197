package get_available_slots

import "github.com/artizaho/workshop-booking/pkg/validation"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	return validation.Struct(req, ErrInvalidInput)
}
