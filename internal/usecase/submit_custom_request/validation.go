package submit_custom_request

import "github.com/artizaho/workshop-booking/pkg/validation"

// validateRequest валидирует входные данные заявки
// Альтернативное время без альтернативной даты не принимается
func validateRequest(req *Request) error {
	return validation.Struct(req, ErrInvalidInput)
}
