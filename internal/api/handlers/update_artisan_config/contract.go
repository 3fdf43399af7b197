package update_artisan_config

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

type ConfigService interface {
	UpsertForArtisan(ctx context.Context, artisanID int64, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
