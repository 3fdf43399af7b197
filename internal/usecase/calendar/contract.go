package calendar

import (
	"context"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога мастер-классов
type CatalogClient interface {
	GetPublishedWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error)
}

// ConfigResolver возвращает действующую конфигурацию слотов
type ConfigResolver interface {
	Resolve(ctx context.Context, artisanID, workshopID int64, maxParticipants uint) (*domain.WorkshopSlotsConfig, error)
}

// BlockingIndexer строит индекс одобренных периодов недоступности мастера
type BlockingIndexer interface {
	BlockingIndex(ctx context.Context, artisanID int64, from, to time.Time) (*eligibility.Index, error)
}

// Clock источник текущего времени в часовом поясе платформы
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
