package get_artisan_configs

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

type ConfigService interface {
	ListForArtisan(ctx context.Context, artisanID int64, userID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
