package create_booking

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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByWorkshopWithFilter(ctx context.Context, filter domain.WorkshopBookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик созданных бронирований
type Metrics interface {
	ObserveBookingCreated(isPrivate bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
