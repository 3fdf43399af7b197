package models

import (
	"fmt"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// Request модели

// UpsertConfigRequest запрос на создание или обновление конфигурации слотов
// Все поля опциональны - обновляются только переданные значения,
// остальные берутся из действующей конфигурации
type UpsertConfigRequest struct {
	UserID                int64     `json:"userId"`
	SlotTimes             *[]string `json:"slotTimes,omitempty"`            // ["09:00", "14:00"]
	MinParticipants       *uint     `json:"minParticipants,omitempty"`      // Минимум для проведения
	MaxParticipants       *uint     `json:"maxParticipants,omitempty"`      // Вместимость слота
	NonOperatingWeekdays  *[]int    `json:"nonOperatingWeekdays,omitempty"` // 0 = воскресенье
	AlmostFullThreshold   *uint     `json:"almostFullThreshold,omitempty"`
	AdvanceBookingDays    *int      `json:"advanceBookingDays,omitempty"` // 0 = без ограничений
	MinNoticeBusinessDays *int      `json:"minNoticeBusinessDays,omitempty"`
}

// ApplyToConfig применяет обновления к конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpsertConfigRequest) ApplyToConfig(config *domain.WorkshopSlotsConfig) error {
	if r.SlotTimes != nil {
		slotTimes := make([]types.TimeString, 0, len(*r.SlotTimes))
		for _, raw := range *r.SlotTimes {
			t, err := types.NewTimeStringFromString(raw)
			if err != nil {
				return fmt.Errorf("slotTimes: %w", err)
			}
			slotTimes = append(slotTimes, t)
		}
		config.SlotTimes = slotTimes
	}
	if r.MinParticipants != nil {
		config.MinParticipants = *r.MinParticipants
	}
	if r.MaxParticipants != nil {
		config.MaxParticipants = *r.MaxParticipants
	}
	if r.NonOperatingWeekdays != nil {
		weekdays := make([]time.Weekday, 0, len(*r.NonOperatingWeekdays))
		for _, wd := range *r.NonOperatingWeekdays {
			if wd < int(time.Sunday) || wd > int(time.Saturday) {
				return fmt.Errorf("nonOperatingWeekdays: %d is not a weekday", wd)
			}
			weekdays = append(weekdays, time.Weekday(wd))
		}
		config.NonOperatingWeekdays = weekdays
	}
	if r.AlmostFullThreshold != nil {
		config.AlmostFullThreshold = *r.AlmostFullThreshold
	}
	if r.AdvanceBookingDays != nil {
		config.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinNoticeBusinessDays != nil {
		config.MinNoticeBusinessDays = *r.MinNoticeBusinessDays
	}
	return nil
}

// Response модели

// ConfigResponse ответ с данными конфигурации слотов
type ConfigResponse struct {
	ID                    int64      `json:"id,omitempty"` // 0 для платформенных значений
	ArtisanID             int64      `json:"artisanId"`
	WorkshopID            *int64     `json:"workshopId,omitempty"`
	Level                 string     `json:"level"` // workshop | artisan | platform
	SlotTimes             []string   `json:"slotTimes"`
	MinParticipants       uint       `json:"minParticipants"`
	MaxParticipants       uint       `json:"maxParticipants"`
	NonOperatingWeekdays  []int      `json:"nonOperatingWeekdays"`
	AlmostFullThreshold   uint       `json:"almostFullThreshold"`
	AdvanceBookingDays    int        `json:"advanceBookingDays"`
	MinNoticeBusinessDays int        `json:"minNoticeBusinessDays"`
	CreatedAt             *time.Time `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.WorkshopSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                    c.ID,
		ArtisanID:             c.ArtisanID,
		WorkshopID:            c.WorkshopID,
		Level:                 c.Level(),
		SlotTimes:             make([]string, len(c.SlotTimes)),
		MinParticipants:       c.MinParticipants,
		MaxParticipants:       c.MaxParticipants,
		NonOperatingWeekdays:  make([]int, len(c.NonOperatingWeekdays)),
		AlmostFullThreshold:   c.AlmostFullThreshold,
		AdvanceBookingDays:    c.AdvanceBookingDays,
		MinNoticeBusinessDays: c.MinNoticeBusinessDays,
	}

	for i, t := range c.SlotTimes {
		resp.SlotTimes[i] = t.String()
	}
	for i, wd := range c.NonOperatingWeekdays {
		resp.NonOperatingWeekdays[i] = int(wd)
	}

	if !c.CreatedAt.IsZero() {
		createdAt, updatedAt := c.CreatedAt, c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.WorkshopSlotsConfig) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, 0, len(configs)),
	}

	for _, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs = append(resp.Configs, *configResp)
		}
	}

	return resp
}
