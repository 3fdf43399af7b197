package get_custom_request

import (
	"context"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
)

type GetCustomRequestUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, userID int64) (*domain.CustomBookingRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
