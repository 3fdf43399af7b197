package customrequests

import (
	"context"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// CustomRequestRepository интерфейс репозитория заявок
type CustomRequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomBookingRequest, error)
	ListByWorkshop(ctx context.Context, workshopID int64, status *domain.CustomRequestStatus) ([]*domain.CustomBookingRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CustomRequestStatus) error
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
