package config

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	Create(ctx context.Context, config *domain.WorkshopSlotsConfig) (*domain.WorkshopSlotsConfig, error)
	GetByArtisanAndWorkshop(ctx context.Context, artisanID int64, workshopID *int64) (*domain.WorkshopSlotsConfig, error)
	GetConfigWithHierarchy(ctx context.Context, artisanID int64, workshopID int64) (*domain.WorkshopSlotsConfig, error)
	GetAllByArtisan(ctx context.Context, artisanID int64) ([]*domain.WorkshopSlotsConfig, error)
	Update(ctx context.Context, id int64, config *domain.WorkshopSlotsConfig) (*domain.WorkshopSlotsConfig, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogClient интерфейс клиента каталога мастер-классов
type CatalogClient interface {
	GetWorkshop(ctx context.Context, workshopID int64) (*catalogservice.Workshop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
