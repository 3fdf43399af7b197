package unavailability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов недоступности
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.UnavailabilityPeriod) (*domain.UnavailabilityPeriod, error)
	List(ctx context.Context, filter domain.UnavailabilityFilter) ([]domain.UnavailabilityPeriod, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PeriodStatus, adminNotes *string) (*domain.UnavailabilityPeriod, error)
	Delete(ctx context.Context, artisanID int64, id uuid.UUID) error
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
