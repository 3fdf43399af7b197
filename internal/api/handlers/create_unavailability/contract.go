package create_unavailability

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

type UnavailabilityService interface {
	Create(ctx context.Context, artisanID int64, req *models.CreatePeriodRequest) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
