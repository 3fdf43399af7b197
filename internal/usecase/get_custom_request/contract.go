package get_custom_request

import (
	"context"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// CustomRequestRepository интерфейс репозитория заявок
type CustomRequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomBookingRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
