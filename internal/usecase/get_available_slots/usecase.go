package get_available_slots

import (
	"context"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// UseCase use case для получения слотов мастер-класса на дату
type UseCase struct {
	calendarLoader CalendarLoader
	bookingRepo    BookingRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarLoader CalendarLoader,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarLoader: calendarLoader,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: workshop=%d, date=%s", req.WorkshopID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)

	// 2. Загружаем календарь на один день
	cal, err := uc.calendarLoader.Load(ctx, req.WorkshopID, date, date)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		WorkshopID: req.WorkshopID,
		Date:       date,
		Slots:      []Slot{},
	}

	// 3. Недоступный день: пустой список и причина
	day := cal.Day(date)
	if !day.Selectable {
		uc.logger.Info("GetAvailableSlots: date %s is not selectable: %s", date.Format(domain.DateFormat), day.Reason)
		resp.Reason = day.Reason
		resp.UnavailableReason = day.UnavailableReason
		return resp, nil
	}

	// 4. Заполненность слотов
	occupancy, err := uc.bookingRepo.ParticipantCounts(ctx, req.WorkshopID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to count participants: %v", err)
		return nil, fmt.Errorf("%w: failed to count participants: %v", ErrInternal, err)
	}
	cal.Catalog.WithOccupancy(date, occupancy)

	// 5. Классифицируем каждый слот
	resp.Slots = classifySlots(cal.Catalog.SlotsFor(req.WorkshopID, date), cal.Policy)

	uc.logger.Info("GetAvailableSlots: %d slots for workshop=%d on %s",
		len(resp.Slots), req.WorkshopID, date.Format(domain.DateFormat))

	return resp, nil
}
