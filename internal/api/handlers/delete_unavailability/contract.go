package delete_unavailability

import (
	"context"

	"github.com/google/uuid"
)

type UnavailabilityService interface {
	Delete(ctx context.Context, artisanID int64, userID int64, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
