package unavailability

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	periodRepo "github.com/artizaho/workshop-booking/internal/infra/storage/unavailability"
	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

// Service сервис периодов недоступности мастеров
type Service struct {
	periodRepo PeriodRepository
	clock      Clock
	logger     Logger
}

// NewService создает новый экземпляр сервиса недоступности
func NewService(periodRepo PeriodRepository, clock Clock, logger Logger) *Service {
	return &Service{
		periodRepo: periodRepo,
		clock:      clock,
		logger:     logger,
	}
}

// Create объявляет период недоступности мастера
// Доступно только самому мастеру; период ожидает модерации и до одобрения ничего не блокирует
func (s *Service) Create(ctx context.Context, artisanID int64, req *models.CreatePeriodRequest) (*models.PeriodResponse, error) {
	s.logger.Info("Create: declaring %s period for artisan=%d by user=%d", req.Kind, artisanID, req.UserID)

	if artisanID != req.UserID {
		s.logger.Warn("Create: user=%d is not artisan=%d", req.UserID, artisanID)
		return nil, ErrAccessDenied
	}

	if !domain.ValidPeriodKind(req.Kind) {
		return nil, fmt.Errorf("%w: kind must be single or range", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	period, err := req.ToDomainPeriod(artisanID)
	if err != nil {
		s.logger.Warn("Create: invalid dates for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: dates must be YYYY-MM-DD", ErrInvalidInput)
	}

	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if period.StartDate.Before(domain.DateOf(s.clock.Now())) {
		s.logger.Warn("Create: period for artisan=%d starts in the past (%s)", artisanID, req.StartDate)
		return nil, ErrPastDate
	}

	period.Status = domain.PeriodPendingApproval

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		s.logger.Error("Create: repository error for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created period id=%s for artisan=%d", created.ID, artisanID)
	return models.FromDomainPeriod(created), nil
}

// ListUpcoming возвращает ближайшие периоды мастера, начинающиеся не раньше From
// Анонимные пользователи видят только одобренные периоды, мастер - все свои
func (s *Service) ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.PeriodListResponse, error) {
	from := domain.DateOf(s.clock.Now())
	if req.From != nil {
		from = domain.DateOf(*req.From)
	}

	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultUpcomingLimit
	}
	if limit > domain.MaxUpcomingLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, domain.MaxUpcomingLimit)
	}

	filter := domain.UnavailabilityFilter{
		ArtisanID: req.ArtisanID,
		From:      &from,
	}
	if req.RequesterID == nil || *req.RequesterID != req.ArtisanID {
		approved := domain.PeriodApproved
		filter.Status = &approved
	}

	s.logger.Info("ListUpcoming: fetching periods for artisan=%d from %s, limit=%d",
		req.ArtisanID, from.Format(domain.DateFormat), limit)

	periods, err := s.periodRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for artisan=%d: %v", req.ArtisanID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	upcoming := eligibility.NewIndex(periods).Upcoming(from, limit)
	return models.FromDomainPeriodList(upcoming), nil
}

// Delete удаляет период мастера
func (s *Service) Delete(ctx context.Context, artisanID int64, userID int64, id uuid.UUID) error {
	s.logger.Info("Delete: deleting period id=%s of artisan=%d by user=%d", id, artisanID, userID)

	if artisanID != userID {
		s.logger.Warn("Delete: user=%d is not artisan=%d", userID, artisanID)
		return ErrAccessDenied
	}

	if err := s.periodRepo.Delete(ctx, artisanID, id); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Delete: period id=%s not found for artisan=%d", id, artisanID)
			return ErrPeriodNotFound
		}
		s.logger.Error("Delete: repository error for period id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted period id=%s", id)
	return nil
}

// SetStatus меняет статус модерации периода
// Доступ проверяется middleware администратора
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, req *models.UpdatePeriodStatusRequest) (*models.PeriodResponse, error) {
	s.logger.Info("SetStatus: setting period id=%s to status=%s", id, req.Status)

	if !domain.ValidPeriodStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.AdminNotes != nil && utf8.RuneCountInString(*req.AdminNotes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: adminNotes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	period, err := s.periodRepo.UpdateStatus(ctx, id, domain.PeriodStatus(req.Status), req.AdminNotes)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("SetStatus: period id=%s not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("SetStatus: repository error for period id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: period id=%s is now %s", id, period.Status)
	return models.FromDomainPeriod(period), nil
}

// BlockingIndex строит индекс одобренных периодов мастера, пересекающих [from, to]
// Используется сценариями проверки и создания бронирований
func (s *Service) BlockingIndex(ctx context.Context, artisanID int64, from, to time.Time) (*eligibility.Index, error) {
	approved := domain.PeriodApproved
	fromDay, toDay := domain.DateOf(from), domain.DateOf(to)

	periods, err := s.periodRepo.List(ctx, domain.UnavailabilityFilter{
		ArtisanID: artisanID,
		Status:    &approved,
		From:      &fromDay,
		To:        &toDay,
	})
	if err != nil {
		s.logger.Error("BlockingIndex: repository error for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: BlockingIndex - repository error: %v", ErrInternal, err)
	}

	return eligibility.NewIndex(periods), nil
}
