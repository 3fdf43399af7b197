package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	configRepo "github.com/artizaho/workshop-booking/internal/infra/storage/config"
	catalogClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

// Service сервис для работы с конфигурацией слотов
type Service struct {
	configRepo    ConfigRepository
	catalogClient CatalogClient
	policy        domain.PlatformPolicy
	logger        Logger
}

// NewService создает новый экземпляр сервиса конфигурации
// policy - платформенные значения по умолчанию из config.toml
func NewService(
	configRepo ConfigRepository,
	catalogClient CatalogClient,
	policy domain.PlatformPolicy,
	logger Logger,
) *Service {
	return &Service{
		configRepo:    configRepo,
		catalogClient: catalogClient,
		policy:        policy,
		logger:        logger,
	}
}

// Resolve возвращает действующую конфигурацию мастер-класса
// Приоритет: мастер-класс > мастер > платформа
// maxParticipants из каталога используется только для платформенного уровня
func (s *Service) Resolve(ctx context.Context, artisanID, workshopID int64, maxParticipants uint) (*domain.WorkshopSlotsConfig, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, artisanID, workshopID)
	if err == nil {
		s.logger.Info("Resolve: using config id=%d (level: %s) for workshop=%d", config.ID, config.Level(), workshopID)
		return config, nil
	}
	if !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Resolve: repository error for workshop=%d: %v", workshopID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Resolve: no stored config for workshop=%d, using platform defaults", workshopID)
	return s.policy.ConfigFor(artisanID, workshopID, maxParticipants), nil
}

// GetForWorkshop получает действующую конфигурацию мастер-класса
// Публичный метод - доступен всем
func (s *Service) GetForWorkshop(ctx context.Context, workshopID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetForWorkshop: fetching config for workshop=%d", workshopID)

	workshop, err := s.getWorkshop(ctx, "GetForWorkshop", workshopID)
	if err != nil {
		return nil, err
	}

	config, err := s.Resolve(ctx, workshop.ArtisanID, workshop.ID, workshop.MaxParticipants)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config), nil
}

// ListForArtisan получает все сохраненные конфигурации мастера
// Доступно только самому мастеру
func (s *Service) ListForArtisan(ctx context.Context, artisanID int64, userID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("ListForArtisan: fetching configs for artisan=%d by user=%d", artisanID, userID)

	if artisanID != userID {
		s.logger.Warn("ListForArtisan: user=%d is not artisan=%d", userID, artisanID)
		return nil, ErrAccessDenied
	}

	configs, err := s.configRepo.GetAllByArtisan(ctx, artisanID)
	if err != nil {
		s.logger.Error("ListForArtisan: repository error for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: ListForArtisan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForArtisan: successfully fetched %d configs for artisan=%d", len(configs), artisanID)
	return models.FromDomainConfigList(configs), nil
}

// UpsertForWorkshop создает или обновляет конфигурацию конкретного мастер-класса
// Доступно только мастеру мастер-класса
// Новая конфигурация наследует значения действующей (мастер или платформа)
func (s *Service) UpsertForWorkshop(ctx context.Context, workshopID int64, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpsertForWorkshop: updating config for workshop=%d by user=%d", workshopID, req.UserID)

	workshop, err := s.getWorkshop(ctx, "UpsertForWorkshop", workshopID)
	if err != nil {
		return nil, err
	}

	if workshop.ArtisanID != req.UserID {
		s.logger.Warn("UpsertForWorkshop: user=%d is not the artisan of workshop=%d", req.UserID, workshopID)
		return nil, ErrAccessDenied
	}

	return s.upsert(ctx, workshop.ArtisanID, &workshop.ID, workshop.MaxParticipants, req)
}

// UpsertForArtisan создает или обновляет общую конфигурацию мастера
// Применяется ко всем мастер-классам без собственной конфигурации
func (s *Service) UpsertForArtisan(ctx context.Context, artisanID int64, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpsertForArtisan: updating config for artisan=%d by user=%d", artisanID, req.UserID)

	if artisanID != req.UserID {
		s.logger.Warn("UpsertForArtisan: user=%d is not artisan=%d", req.UserID, artisanID)
		return nil, ErrAccessDenied
	}

	return s.upsert(ctx, artisanID, nil, 0, req)
}

// DeleteForWorkshop удаляет конфигурацию мастер-класса
// После удаления действует конфигурация мастера или платформы
func (s *Service) DeleteForWorkshop(ctx context.Context, workshopID int64, userID int64) error {
	s.logger.Info("DeleteForWorkshop: deleting config for workshop=%d by user=%d", workshopID, userID)

	workshop, err := s.getWorkshop(ctx, "DeleteForWorkshop", workshopID)
	if err != nil {
		return err
	}

	if workshop.ArtisanID != userID {
		s.logger.Warn("DeleteForWorkshop: user=%d is not the artisan of workshop=%d", userID, workshopID)
		return ErrAccessDenied
	}

	config, err := s.configRepo.GetByArtisanAndWorkshop(ctx, workshop.ArtisanID, &workshop.ID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("DeleteForWorkshop: no config for workshop=%d", workshopID)
			return ErrConfigNotFound
		}
		s.logger.Error("DeleteForWorkshop: repository error for workshop=%d: %v", workshopID, err)
		return fmt.Errorf("%w: DeleteForWorkshop - repository error: %v", ErrInternal, err)
	}

	if err := s.configRepo.Delete(ctx, config.ID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return ErrConfigNotFound
		}
		s.logger.Error("DeleteForWorkshop: repository error for config id=%d: %v", config.ID, err)
		return fmt.Errorf("%w: DeleteForWorkshop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteForWorkshop: successfully deleted config id=%d", config.ID)
	return nil
}

// Вспомогательные методы

// upsert применяет частичное обновление к существующей записи
// или к унаследованной конфигурации и сохраняет результат
func (s *Service) upsert(
	ctx context.Context,
	artisanID int64,
	workshopID *int64,
	maxParticipants uint,
	req *models.UpsertConfigRequest,
) (*models.ConfigResponse, error) {
	existing, err := s.configRepo.GetByArtisanAndWorkshop(ctx, artisanID, workshopID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("upsert: failed to check existing config for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: upsert - repository error: %v", ErrInternal, err)
	}

	var base *domain.WorkshopSlotsConfig
	if existing != nil {
		base = existing
	} else {
		base, err = s.inherited(ctx, artisanID, workshopID, maxParticipants)
		if err != nil {
			return nil, err
		}
	}

	// Применяем изменения к копии для валидации
	candidate := *base
	if err := req.ApplyToConfig(&candidate); err != nil {
		s.logger.Warn("upsert: invalid request for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateConfig(&candidate); err != nil {
		s.logger.Warn("upsert: validation failed for artisan=%d: %v", artisanID, err)
		return nil, err
	}

	if existing != nil {
		updated, err := s.configRepo.Update(ctx, existing.ID, &candidate)
		if err != nil {
			if errors.Is(err, configRepo.ErrConfigNotFound) {
				return nil, ErrConfigNotFound
			}
			s.logger.Error("upsert: repository error for config id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: upsert - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("upsert: successfully updated config id=%d", updated.ID)
		return models.FromDomainConfig(updated), nil
	}

	created, err := s.configRepo.Create(ctx, &candidate)
	if err != nil {
		if errors.Is(err, configRepo.ErrDuplicateConfig) {
			s.logger.Warn("upsert: concurrent create for artisan=%d, workshop=%v", artisanID, workshopID)
			return nil, ErrConfigAlreadyExists
		}
		s.logger.Error("upsert: repository error for artisan=%d: %v", artisanID, err)
		return nil, fmt.Errorf("%w: upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("upsert: successfully created config id=%d (level: %s)", created.ID, created.Level())
	return models.FromDomainConfig(created), nil
}

// inherited строит несохраненную конфигурацию из следующего уровня иерархии
func (s *Service) inherited(ctx context.Context, artisanID int64, workshopID *int64, maxParticipants uint) (*domain.WorkshopSlotsConfig, error) {
	var base *domain.WorkshopSlotsConfig

	if workshopID != nil {
		resolved, err := s.Resolve(ctx, artisanID, *workshopID, maxParticipants)
		if err != nil {
			return nil, err
		}
		base = resolved
	} else {
		base = s.policy.ConfigFor(artisanID, 0, maxParticipants)
	}

	inherited := *base
	inherited.ID = 0
	inherited.ArtisanID = artisanID
	inherited.WorkshopID = workshopID
	return &inherited, nil
}

func (s *Service) getWorkshop(ctx context.Context, op string, workshopID int64) (*catalogClient.Workshop, error) {
	workshop, err := s.catalogClient.GetWorkshop(ctx, workshopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrWorkshopNotFound) {
			s.logger.Warn("%s: workshop id=%d not found", op, workshopID)
			return nil, ErrWorkshopNotFound
		}
		s.logger.Error("%s: failed to get workshop id=%d: %v", op, workshopID, err)
		return nil, fmt.Errorf("%w: %s - failed to get workshop: %v", ErrInternal, op, err)
	}
	return workshop, nil
}
