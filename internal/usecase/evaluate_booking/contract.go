package evaluate_booking

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

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ParticipantCounts(ctx context.Context, workshopID int64, date time.Time) (domain.SlotOccupancy, error)
}

// Metrics счетчик результатов проверки
type Metrics interface {
	ObserveClassification(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
