package bookings

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/artizaho/workshop-booking/internal/domain"
	bookingRepo "github.com/artizaho/workshop-booking/internal/infra/storage/booking"
	catalogClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования и мастеру, проводящему мастер-класс
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && booking.ArtisanID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetWorkshopBookings получает бронирования мастер-класса с фильтрацией
// Доступно только мастеру мастер-класса
func (s *Service) GetWorkshopBookings(ctx context.Context, req *models.GetWorkshopBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetWorkshopBookings: fetching bookings for workshop=%d, user=%d", req.WorkshopID, req.UserID)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	if err := s.checkArtisanAccess(ctx, req.WorkshopID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetWorkshopBookings: invalid filter for workshop=%d: %v", req.WorkshopID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByWorkshopWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetWorkshopBookings: repository error for workshop=%d: %v", req.WorkshopID, err)
		return nil, fmt.Errorf("%w: GetWorkshopBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkshopBookings: successfully fetched %d bookings for workshop=%d", len(bookings), req.WorkshopID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Участник отменяет своё бронирование (cancelled_by_user),
// мастер - любое бронирование своего мастер-класса (cancelled_by_artisan)
// Отмена освобождает места в слоте: неактивные бронирования не учитываются в занятости
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if utf8.RuneCountInString(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	var cancelStatus domain.BookingStatus
	switch req.UserID {
	case booking.UserID:
		cancelStatus = domain.StatusCancelledByUser
	case booking.ArtisanID:
		cancelStatus = domain.StatusCancelledByArtisan
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только мастеру: pending -> confirmed, confirmed -> completed | no_show
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	if booking.ArtisanID != req.UserID {
		s.logger.Warn("UpdateStatus: user=%d is not the artisan of booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d", booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkArtisanAccess проверяет, что пользователь является мастером мастер-класса
func (s *Service) checkArtisanAccess(ctx context.Context, workshopID int64, userID int64) error {
	workshop, err := s.catalogClient.GetWorkshop(ctx, workshopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrWorkshopNotFound) {
			s.logger.Warn("checkArtisanAccess: workshop id=%d not found", workshopID)
			return ErrWorkshopNotFound
		}
		s.logger.Error("checkArtisanAccess: failed to get workshop id=%d: %v", workshopID, err)
		return fmt.Errorf("%w: checkArtisanAccess - failed to get workshop: %v", ErrInternal, err)
	}

	if workshop.ArtisanID != userID {
		s.logger.Warn("checkArtisanAccess: user=%d is not the artisan of workshop=%d", userID, workshopID)
		return ErrAccessDenied
	}

	return nil
}
