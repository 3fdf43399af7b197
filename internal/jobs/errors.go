package jobs

import "errors"

var (
	// ErrInvalidSchedule возвращается для некорректного cron-выражения
	ErrInvalidSchedule = errors.New("jobs: invalid cron schedule")

	// ErrJobFailed возвращается, когда задача завершилась с ошибкой
	ErrJobFailed = errors.New("jobs: job failed")
)
