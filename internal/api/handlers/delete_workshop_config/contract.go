package delete_workshop_config

import "context"

type ConfigService interface {
	DeleteForWorkshop(ctx context.Context, workshopID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
