package quote_privatization

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога мастер-классов
type CatalogClient interface {
	GetPublishedWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
