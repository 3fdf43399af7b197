package evaluate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

// UseCase use case проверки возможности бронирования
type UseCase struct {
	calendarLoader CalendarLoader
	bookingRepo    BookingRepository
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarLoader CalendarLoader,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarLoader: calendarLoader,
		bookingRepo:    bookingRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute классифицирует запрос и подсказывает, какую панель показать
// Недоступная для выбора дата не ошибка: возвращается панель closed с кодом причины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EvaluateBooking: workshop=%d, date=%s, time=%v, participants=%d, private=%t",
		req.WorkshopID, req.Date.Format(domain.DateFormat), req.Time, req.Participants, req.IsPrivate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EvaluateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)

	// 2. Загружаем мастер-класс, конфигурацию и недоступность мастера на этот день
	cal, err := uc.calendarLoader.Load(ctx, req.WorkshopID, date, date)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		WorkshopID: req.WorkshopID,
		Date:       date,
		Time:       req.Time,
	}

	// 3. Дата должна быть выбираемой
	if err := cal.CheckDate(date); err != nil {
		uc.logger.Info("EvaluateBooking: date %s is not selectable: %v", date.Format(domain.DateFormat), err)
		resp.Panel = domain.PanelClosed
		resp.ClosedReason = calendar.ReasonCode(err)
		return resp, nil
	}

	// 4. Заполненность слотов на этот день
	occupancy, err := uc.bookingRepo.ParticipantCounts(ctx, req.WorkshopID, date)
	if err != nil {
		uc.logger.Error("EvaluateBooking: failed to count participants: %v", err)
		return nil, fmt.Errorf("%w: failed to count participants: %v", ErrInternal, err)
	}
	cal.Catalog.WithOccupancy(date, occupancy)

	// 5. Классификация
	bookingReq := domain.BookingRequest{
		WorkshopID:   req.WorkshopID,
		Date:         date,
		Time:         req.Time,
		Participants: req.Participants,
		IsPrivate:    req.IsPrivate,
	}

	classification, err := cal.Evaluate(bookingReq)
	if err != nil {
		if errors.Is(err, ErrUnknownTimeSlot) {
			uc.logger.Warn("EvaluateBooking: %v", err)
			return nil, err
		}
		uc.logger.Error("EvaluateBooking: evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	uc.metrics.ObserveClassification(string(classification.Status))

	resp.Classification = classification
	resp.Panel = domain.PanelFor(classification)

	if classification.Status == domain.SlotArtisanUnavailable {
		return resp, nil
	}

	// 6. Помещается ли группа и сколько это стоит
	if slot, ok := cal.SlotAt(bookingReq); ok {
		resp.Slot = &slot
		resp.Fits = fits(slot, classification, req.Participants, req.IsPrivate)
	}

	price, err := cal.Price(req.Participants, req.IsPrivate)
	if err != nil {
		uc.logger.Warn("EvaluateBooking: cannot price request: %v", err)
		return nil, err
	}
	resp.Price = &price

	uc.logger.Info("EvaluateBooking: workshop=%d, date=%s classified as %s (panel %s)",
		req.WorkshopID, date.Format(domain.DateFormat), classification.Status, resp.Panel)

	return resp, nil
}

// fits проверяет, что группу можно записать в слот
// Приватная сессия занимает только пустой слот
func fits(slot domain.TimeSlot, classification domain.SlotClassification, participants uint, isPrivate bool) bool {
	if !classification.IsBookable() {
		return false
	}
	if isPrivate {
		return slot.IsEmpty()
	}
	return participants <= slot.Remaining()
}
