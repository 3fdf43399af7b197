package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	calendarLoader CalendarLoader
	bookingRepo    BookingRepository
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarLoader CalendarLoader,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarLoader: calendarLoader,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка мест и вставка идут в сериализуемой транзакции с блокировкой бронирований дня,
// поэтому число участников слота никогда не превышает максимум
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, workshop=%d, date=%s, time=%s, participants=%d, private=%t",
		req.UserID, req.WorkshopID, req.Date.Format(domain.DateFormat), req.StartTime, req.Participants, req.IsPrivate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)

	// 2. Мастер-класс, конфигурация и недоступность мастера
	cal, err := uc.calendarLoader.Load(ctx, req.WorkshopID, date, date)
	if err != nil {
		return nil, err
	}

	// 3. Дата должна быть выбираемой
	if err := cal.CheckDate(date); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Стоимость; для приватной сессии проверяются границы приватизации
	price, err := cal.Price(req.Participants, req.IsPrivate)
	if err != nil {
		uc.logger.Warn("CreateBooking: cannot price booking: %v", err)
		return nil, err
	}

	bookingReq := domain.BookingRequest{
		WorkshopID:   req.WorkshopID,
		Date:         date,
		Time:         &req.StartTime,
		Participants: req.Participants,
		IsPrivate:    req.IsPrivate,
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.WorkshopBookingsFilter{
			WorkshopID:      req.WorkshopID,
			StartDate:       &date,
			EndDate:         &date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByWorkshopWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}
		cal.Catalog.WithOccupancy(date, domain.OccupancyOf(bookings))

		// 5.2. Повторная классификация по заблокированному снимку
		classification, err := cal.Evaluate(bookingReq)
		if err != nil {
			if errors.Is(err, eligibility.ErrUnknownTimeSlot) {
				uc.logger.Warn("CreateBooking: %v", err)
				return fmt.Errorf("%w: %s is not a slot of this workshop", ErrInvalidTimeSlot, req.StartTime)
			}
			uc.logger.Error("CreateBooking: evaluation failed: %v", err)
			return fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
		}

		switch classification.Status {
		case domain.SlotArtisanUnavailable:
			uc.logger.Warn("CreateBooking: artisan unavailable on %s: %s", date.Format(domain.DateFormat), classification.Reason)
			return ErrArtisanUnavailable
		case domain.SlotFull:
			uc.logger.Warn("CreateBooking: slot %s is full", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Хватает ли мест
		slot, _ := cal.SlotAt(bookingReq)
		if err := checkSeats(slot, req.Participants, req.IsPrivate); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		uc.logger.Info("CreateBooking: slot %s has %d/%d participants, classified %s",
			req.StartTime, slot.Capacity.Current, slot.Capacity.Max, classification.Status)

		// 5.4. Создаем бронирование с денормализацией данных мастер-класса
		booking := &domain.Booking{
			UserID:        req.UserID,
			WorkshopID:    req.WorkshopID,
			ArtisanID:     cal.Workshop.ArtisanID,
			BookingDate:   date,
			StartTime:     req.StartTime,
			Participants:  req.Participants,
			IsPrivate:     req.IsPrivate,
			Status:        domain.StatusPending,
			WorkshopTitle: cal.Workshop.Title,
			TotalPrice:    price,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентная запись в тот же слот не дала зафиксировать транзакцию
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: concurrent booking of slot %s: %v", req.StartTime, err)
			return nil, fmt.Errorf("%w: concurrent booking, retry later", ErrSlotNotAvailable)
		}
		return nil, err
	}

	uc.metrics.ObserveBookingCreated(result.IsPrivate)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		WorkshopID:    result.WorkshopID,
		ArtisanID:     result.ArtisanID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Participants:  result.Participants,
		IsPrivate:     result.IsPrivate,
		Status:        string(result.Status),
		WorkshopTitle: result.WorkshopTitle,
		TotalPrice:    int64(result.TotalPrice),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
