package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	catalogClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
)

// Calendar снимок всего, что нужно для проверки дат и слотов одного мастер-класса
type Calendar struct {
	Workshop *catalogClient.Workshop
	Config   *domain.WorkshopSlotsConfig
	Index    *eligibility.Index
	Catalog  *eligibility.Catalog
	Policy   eligibility.Policy
	Today    time.Time
}

// Loader собирает Calendar из каталога, конфигурации и периодов недоступности
type Loader struct {
	catalogClient CatalogClient
	configs       ConfigResolver
	blocks        BlockingIndexer
	clock         Clock
	logger        Logger
}

// NewLoader создает новый экземпляр загрузчика
func NewLoader(
	catalogClient CatalogClient,
	configs ConfigResolver,
	blocks BlockingIndexer,
	clock Clock,
	logger Logger,
) *Loader {
	return &Loader{
		catalogClient: catalogClient,
		configs:       configs,
		blocks:        blocks,
		clock:         clock,
		logger:        logger,
	}
}

// Load загружает опубликованный мастер-класс, его конфигурацию
// и одобренные периоды недоступности мастера, пересекающие [from, to]
func (l *Loader) Load(ctx context.Context, workshopID int64, from, to time.Time) (*Calendar, error) {
	workshop, err := l.catalogClient.GetPublishedWorkshop(ctx, workshopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrWorkshopNotFound) {
			l.logger.Warn("Load: workshop id=%d not found", workshopID)
			return nil, ErrWorkshopNotFound
		}
		l.logger.Error("Load: failed to get workshop id=%d: %v", workshopID, err)
		return nil, fmt.Errorf("%w: failed to get workshop: %v", ErrInternal, err)
	}

	config, err := l.configs.Resolve(ctx, workshop.ArtisanID, workshop.ID, workshop.MaxParticipants)
	if err != nil {
		l.logger.Error("Load: failed to resolve config for workshop id=%d: %v", workshopID, err)
		return nil, fmt.Errorf("%w: failed to resolve config: %v", ErrInternal, err)
	}

	index, err := l.blocks.BlockingIndex(ctx, workshop.ArtisanID, from, to)
	if err != nil {
		l.logger.Error("Load: failed to load unavailability of artisan=%d: %v", workshop.ArtisanID, err)
		return nil, fmt.Errorf("%w: failed to load unavailability: %v", ErrInternal, err)
	}

	return &Calendar{
		Workshop: workshop,
		Config:   config,
		Index:    index,
		Catalog:  eligibility.NewCatalog(workshop.ID, config, index, l.clock),
		Policy:   eligibility.NewPolicy(config.AlmostFullThreshold),
		Today:    domain.DateOf(l.clock.Now()),
	}, nil
}

// CheckDate проверяет, что дату можно выбрать без учета недоступности мастера
// Блокировка мастером не ошибка: она возвращается классификацией ArtisanUnavailable
func (c *Calendar) CheckDate(date time.Time) error {
	day := domain.DateOf(date)

	if c.Catalog.IsPast(day) {
		return ErrPastDate
	}

	if c.Catalog.IsNonOperatingDay(day) {
		return fmt.Errorf("%w: %s", ErrNonOperatingDay, day.Weekday())
	}

	if c.Config.HasAdvanceBookingLimit() {
		maxDate := c.Today.AddDate(0, 0, c.Config.AdvanceBookingDays)
		if day.After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrTooFarInAdvance, c.Config.AdvanceBookingDays)
		}
	}

	if c.Config.RequiresNotice() {
		if domain.BusinessDaysBetween(c.Today, day) < c.Config.MinNoticeBusinessDays {
			return fmt.Errorf("%w: at least %d business days required", ErrInsufficientNotice, c.Config.MinNoticeBusinessDays)
		}
	}

	return nil
}

// SlotAt возвращает слот, на который нацелен запрос
func (c *Calendar) SlotAt(req domain.BookingRequest) (domain.TimeSlot, bool) {
	if req.Time == nil {
		return domain.TimeSlot{}, false
	}
	for _, slot := range c.Catalog.SlotsFor(req.WorkshopID, req.Date) {
		if slot.Time.Equal(*req.Time) {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}

// Evaluate классифицирует запрос по текущему снимку
func (c *Calendar) Evaluate(req domain.BookingRequest) (domain.SlotClassification, error) {
	return eligibility.Evaluate(req, c.Catalog, c.Index, c.Policy)
}

// Price считает стоимость бронирования
// Приватная сессия считается по условиям приватизации, обычная - participants * basePrice
func (c *Calendar) Price(participants uint, isPrivate bool) (domain.Ariary, error) {
	if !isPrivate {
		return domain.Ariary(participants) * domain.Ariary(c.Workshop.BasePrice), nil
	}

	option := c.Workshop.Privatization()
	if option == nil {
		return 0, ErrPrivatizationDisabled
	}
	return c.Policy.PrivatizedTotal(*option, participants)
}

// ReasonArtisanUnavailable код причины для дня, заблокированного мастером
const ReasonArtisanUnavailable = "artisan_unavailable"

// DayStatus доступность дня в календаре бронирования
type DayStatus struct {
	Date              time.Time
	Selectable        bool
	Reason            string // Код причины, пусто для доступного дня
	UnavailableReason string // Причина, указанная мастером
}

// Day вычисляет доступность дня
func (c *Calendar) Day(date time.Time) DayStatus {
	status := DayStatus{Date: domain.DateOf(date)}

	if err := c.CheckDate(date); err != nil {
		status.Reason = ReasonCode(err)
		return status
	}

	if reason, blocked := c.Index.ReasonFor(date); blocked {
		status.Reason = ReasonArtisanUnavailable
		status.UnavailableReason = reason
		return status
	}

	status.Selectable = true
	return status
}
