package customrequests

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	requestRepo "github.com/artizaho/workshop-booking/internal/infra/storage/customrequest"
	catalogClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
)

// Service сервис рассмотрения заявок мастером
type Service struct {
	requestRepo   CustomRequestRepository
	catalogClient CatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	requestRepo CustomRequestRepository,
	catalogClient CatalogClient,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:   requestRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// ListWorkshopRequests получает заявки мастер-класса
// Доступно только мастеру мастер-класса
func (s *Service) ListWorkshopRequests(ctx context.Context, req *models.ListWorkshopRequestsRequest) ([]*models.CustomRequestResponse, error) {
	s.logger.Info("ListWorkshopRequests: fetching requests for workshop=%d, user=%d", req.WorkshopID, req.UserID)

	var status *domain.CustomRequestStatus
	if req.Status != nil {
		if !domain.ValidCustomRequestStatus(*req.Status) {
			s.logger.Warn("ListWorkshopRequests: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		st := domain.CustomRequestStatus(*req.Status)
		status = &st
	}

	if err := s.checkArtisanAccess(ctx, req.WorkshopID, req.UserID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByWorkshop(ctx, req.WorkshopID, status)
	if err != nil {
		s.logger.Error("ListWorkshopRequests: repository error for workshop=%d: %v", req.WorkshopID, err)
		return nil, fmt.Errorf("%w: ListWorkshopRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListWorkshopRequests: successfully fetched %d requests for workshop=%d", len(requests), req.WorkshopID)
	return models.FromDomainRequestList(requests), nil
}

// UpdateStatus подтверждает или отклоняет заявку
// Доступно только мастеру: pending -> confirmed | rejected
func (s *Service) UpdateStatus(ctx context.Context, requestID uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating request id=%s to status=%s by user=%d", requestID, req.Status, req.UserID)

	if !domain.ValidCustomRequestStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for request id=%s", req.Status, requestID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	newStatus := domain.CustomRequestStatus(req.Status)

	customRequest, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("UpdateStatus: request id=%s not found", requestID)
			return ErrRequestNotFound
		}
		s.logger.Error("UpdateStatus: repository error for request id=%s: %v", requestID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkArtisanAccess(ctx, customRequest.WorkshopID, req.UserID); err != nil {
		return err
	}

	if !customRequest.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for request id=%s", customRequest.Status, newStatus, requestID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, customRequest.Status, newStatus)
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, customRequest.Status, newStatus); err != nil {
		// Статус сменился между чтением и записью, например заявка истекла
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("UpdateStatus: request id=%s is no longer %s", requestID, customRequest.Status)
			return fmt.Errorf("%w: request is no longer %s", ErrInvalidTransition, customRequest.Status)
		}
		s.logger.Error("UpdateStatus: repository error for request id=%s: %v", requestID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated request id=%s to status=%s", requestID, newStatus)
	return nil
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
