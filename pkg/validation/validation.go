// Package validation проверяет входные модели по тегам validate
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/artizaho/workshop-booking/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях поле называется как в JSON: userID, contactEmail
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return lowerFirst(f.Name)
	})

	// timestring: время суток в формате HH:MM
	if err := v.RegisterValidation("timestring", func(fl validator.FieldLevel) bool {
		ts, ok := fl.Field().Interface().(types.TimeString)
		return ok && ts.Validate() == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct проверяет s по тегам и оборачивает первое нарушение в sentinel
func Struct(s interface{}, sentinel error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", sentinel, err)
	}

	return fmt.Errorf("%w: %s", sentinel, describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "required_with":
		return fe.Field() + " is required with " + lowerFirst(fe.Param())
	case "required_if":
		return fe.Field() + " is required when " + lowerFirst(fe.Param())
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at %s %s characters", fe.Field(), bound(fe.Tag()), fe.Param())
		}
		return fmt.Sprintf("%s must be at %s %s", fe.Field(), bound(fe.Tag()), fe.Param())
	case "email":
		return fmt.Sprintf("invalid %s: %v", fe.Field(), fe.Value())
	case "timestring":
		return fmt.Sprintf("invalid %s: %q is not HH:MM", fe.Field(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func bound(tag string) string {
	if tag == "min" {
		return "least"
	}
	return "most"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// ID, URL: аббревиатура целиком
	if strings.ToUpper(s) == s {
		return strings.ToLower(s)
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
