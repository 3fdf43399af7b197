package update_workshop_config

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

type ConfigService interface {
	UpsertForWorkshop(ctx context.Context, workshopID int64, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
