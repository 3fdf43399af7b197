package get_selectable_dates

import (
	"context"
	"time"

	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

// CalendarLoader загружает снимок календаря мастер-класса
type CalendarLoader interface {
	Load(ctx context.Context, workshopID int64, from, to time.Time) (*calendar.Calendar, error)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
