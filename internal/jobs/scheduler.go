package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// jobTimeout ограничение на один запуск задачи
const jobTimeout = time.Minute

// Scheduler фоновые задачи сервиса
type Scheduler struct {
	cron        *cron.Cron
	requestRepo CustomRequestExpirer
	clock       Clock
	metrics     Metrics
	logger      Logger
}

// NewScheduler создает планировщик; cron-выражения считаются в часовом поясе loc
func NewScheduler(
	loc *time.Location,
	requestRepo CustomRequestExpirer,
	clock Clock,
	metrics Metrics,
	logger Logger,
) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		requestRepo: requestRepo,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

// RegisterExpireCustomRequests добавляет задачу истечения заявок по расписанию schedule
func (s *Scheduler) RegisterExpireCustomRequests(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if _, err := s.ExpireCustomRequests(ctx); err != nil {
			s.logger.Error("ExpireCustomRequests: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	s.logger.Info("Scheduler: expire_custom_requests scheduled at %q", schedule)
	return nil
}

// ExpireCustomRequests переводит в expired ожидающие заявки, все даты которых прошли
func (s *Scheduler) ExpireCustomRequests(ctx context.Context) (int64, error) {
	today := domain.DateOf(s.clock.Now())
	s.logger.Info("ExpireCustomRequests: expiring pending requests before %s", today.Format(domain.DateFormat))

	expired, err := s.requestRepo.ExpirePendingBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireCustomRequests - repository error: %v", ErrJobFailed, err)
	}

	s.metrics.ObserveExpiredRequests(expired)
	s.logger.Info("ExpireCustomRequests: %d requests expired", expired)
	return expired, nil
}

// Start запускает планировщик в отдельной горутине
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Entries количество зарегистрированных задач
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
