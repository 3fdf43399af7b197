package jobs

import (
	"context"
	"time"
)

// CustomRequestExpirer репозиторий заявок с массовым переводом в expired
type CustomRequestExpirer interface {
	ExpirePendingBefore(ctx context.Context, today time.Time) (int64, error)
}

// Clock источник текущего времени в часовом поясе платформы
type Clock interface {
	Now() time.Time
}

// Metrics счетчик истекших заявок
type Metrics interface {
	ObserveExpiredRequests(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
