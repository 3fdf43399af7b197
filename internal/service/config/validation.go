package config

import (
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// validateConfig валидирует итоговую конфигурацию после применения изменений
func validateConfig(config *domain.WorkshopSlotsConfig) error {
	if len(config.SlotTimes) == 0 {
		return fmt.Errorf("%w: slotTimes must not be empty", ErrInvalidInput)
	}

	seen := make(map[types.TimeString]struct{}, len(config.SlotTimes))
	for _, t := range config.SlotTimes {
		if err := domain.ValidateSlotTime(t); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, ok := seen[t]; ok {
			return fmt.Errorf("%w: duplicate slot time %s", ErrInvalidInput, t)
		}
		seen[t] = struct{}{}
	}

	if config.MaxParticipants == 0 || config.MaxParticipants > domain.MaxParticipantsLimit {
		return fmt.Errorf("%w: maxParticipants must be between 1 and %d", ErrInvalidInput, domain.MaxParticipantsLimit)
	}

	if config.MinParticipants == 0 || config.MinParticipants > config.MaxParticipants {
		return fmt.Errorf("%w: minParticipants must be between 1 and maxParticipants", ErrInvalidInput)
	}

	if config.AlmostFullThreshold > domain.MaxAlmostFullThreshold {
		return fmt.Errorf("%w: almostFullThreshold must be at most %d", ErrInvalidInput, domain.MaxAlmostFullThreshold)
	}

	if config.AdvanceBookingDays < 0 || config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between 0 and %d", ErrInvalidInput, domain.MaxAdvanceBookingDays)
	}

	if config.MinNoticeBusinessDays < 0 || config.MinNoticeBusinessDays > domain.MaxMinNoticeBusinessDays {
		return fmt.Errorf("%w: minNoticeBusinessDays must be between 0 and %d", ErrInvalidInput, domain.MaxMinNoticeBusinessDays)
	}

	// Хотя бы один рабочий день в неделе
	closed := make(map[int]struct{}, len(config.NonOperatingWeekdays))
	for _, wd := range config.NonOperatingWeekdays {
		closed[int(wd)] = struct{}{}
	}
	if len(closed) >= 7 {
		return fmt.Errorf("%w: at least one weekday must be operating", ErrInvalidInput)
	}

	return nil
}
