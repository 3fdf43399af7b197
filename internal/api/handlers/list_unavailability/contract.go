package list_unavailability

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

type UnavailabilityService interface {
	ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.PeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
