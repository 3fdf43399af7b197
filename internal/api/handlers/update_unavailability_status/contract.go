package update_unavailability_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

type UnavailabilityService interface {
	SetStatus(ctx context.Context, id uuid.UUID, req *models.UpdatePeriodStatusRequest) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
