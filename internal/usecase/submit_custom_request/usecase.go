package submit_custom_request

import (
	"context"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
)

// UseCase use case приема заявки на бронирование вне слотов
type UseCase struct {
	calendarLoader CalendarLoader
	requestRepo    CustomRequestRepository
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarLoader CalendarLoader,
	requestRepo CustomRequestRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarLoader: calendarLoader,
		requestRepo:    requestRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute сохраняет заявку
// Пересечение с недоступностью мастера не отклоняет заявку, а помечает ее флагом HasConflict
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitCustomRequest: user=%d, workshop=%d, preferred=%s, participants=%d, private=%t",
		req.UserID, req.WorkshopID, req.PreferredDate.Format(domain.DateFormat), req.Participants, req.IsPrivate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitCustomRequest: validation failed: %v", err)
		return nil, err
	}

	customRequest := req.toDomain()

	// 2. Календарь на окно, покрывающее обе даты заявки
	cal, err := uc.calendarLoader.Load(ctx, req.WorkshopID, customRequest.EarliestDate(), customRequest.LatestDate())
	if err != nil {
		return nil, err
	}

	// 3. Обе даты не должны быть в прошлом
	if cal.Catalog.IsPast(customRequest.PreferredDate) ||
		(customRequest.AlternativeDate != nil && cal.Catalog.IsPast(*customRequest.AlternativeDate)) {
		uc.logger.Warn("SubmitCustomRequest: request of user=%d targets a past date", req.UserID)
		return nil, ErrPastDate
	}

	// 4. Оценка стоимости приватной сессии
	if req.IsPrivate {
		price, err := cal.Price(req.Participants, true)
		if err != nil {
			uc.logger.Warn("SubmitCustomRequest: cannot estimate private price: %v", err)
			return nil, err
		}
		customRequest.EstimatedPrice = &price
	}

	// 5. Предупреждение о пересечении с недоступностью мастера
	customRequest.HasConflict = eligibility.DetectConflict(customRequest.ConflictQuery(), cal.Index)
	if customRequest.HasConflict {
		uc.logger.Info("SubmitCustomRequest: request of user=%d overlaps unavailability of artisan=%d",
			req.UserID, cal.Workshop.ArtisanID)
	}

	// 6. Сохраняем заявку
	created, err := uc.requestRepo.Create(ctx, customRequest)
	if err != nil {
		uc.logger.Error("SubmitCustomRequest: failed to save request: %v", err)
		return nil, fmt.Errorf("%w: failed to save request: %v", ErrInternal, err)
	}

	uc.metrics.ObserveCustomRequest(created.HasConflict)
	uc.logger.Info("SubmitCustomRequest: successfully saved request id=%s (conflict=%t)", created.ID, created.HasConflict)

	return fromDomain(created), nil
}
