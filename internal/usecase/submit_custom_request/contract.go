package submit_custom_request

import (
	"context"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

// CalendarLoader загружает снимок календаря мастер-класса
type CalendarLoader interface {
	Load(ctx context.Context, workshopID int64, from, to time.Time) (*calendar.Calendar, error)
}

// CustomRequestRepository интерфейс репозитория заявок
type CustomRequestRepository interface {
	Create(ctx context.Context, req *domain.CustomBookingRequest) (*domain.CustomBookingRequest, error)
}

// Metrics счетчик заявок
type Metrics interface {
	ObserveCustomRequest(hasConflict bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
