package quote_privatization

import (
	"context"
	"errors"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/eligibility"
	catalogClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// UseCase use case расчета стоимости приватной сессии
type UseCase struct {
	catalogClient CatalogClient
	policy        eligibility.Policy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogClient CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		policy:        eligibility.DefaultPolicy(),
		logger:        logger,
	}
}

// Execute считает basePrice + participants * pricePerParticipant
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrivatization: workshop=%d, participants=%d", req.WorkshopID, req.Participants)

	if req.WorkshopID <= 0 {
		return nil, fmt.Errorf("%w: workshopID must be positive", ErrInvalidInput)
	}
	if req.Participants == 0 {
		return nil, fmt.Errorf("%w: participants must be positive", ErrInvalidInput)
	}

	workshop, err := uc.catalogClient.GetPublishedWorkshop(ctx, req.WorkshopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrWorkshopNotFound) {
			uc.logger.Warn("QuotePrivatization: workshop id=%d not found", req.WorkshopID)
			return nil, ErrWorkshopNotFound
		}
		uc.logger.Error("QuotePrivatization: failed to get workshop id=%d: %v", req.WorkshopID, err)
		return nil, fmt.Errorf("%w: failed to get workshop: %v", ErrInternal, err)
	}

	option := workshop.Privatization()
	if option == nil {
		uc.logger.Warn("QuotePrivatization: workshop id=%d cannot be privatized", req.WorkshopID)
		return nil, ErrPrivatizationDisabled
	}

	total, err := uc.policy.PrivatizedTotal(*option, req.Participants)
	if err != nil {
		uc.logger.Warn("QuotePrivatization: %v", err)
		return nil, err
	}

	return &Response{
		WorkshopID:   req.WorkshopID,
		Participants: req.Participants,
		Option:       *option,
		Total:        total,
	}, nil
}
