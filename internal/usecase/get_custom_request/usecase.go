package get_custom_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	requestRepo "github.com/artizaho/workshop-booking/internal/infra/storage/customrequest"
)

// UseCase use case просмотра заявки ее автором
type UseCase struct {
	requestRepo CustomRequestRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(requestRepo CustomRequestRepository, logger Logger) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute возвращает заявку, если userID ее автор
func (uc *UseCase) Execute(ctx context.Context, id uuid.UUID, userID int64) (*domain.CustomBookingRequest, error) {
	uc.logger.Info("GetCustomRequest: request id=%s by user=%d", id, userID)

	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			uc.logger.Warn("GetCustomRequest: request id=%s not found", id)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("GetCustomRequest: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	if req.UserID != userID {
		uc.logger.Warn("GetCustomRequest: user=%d is not the author of request id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return req, nil
}
