package domain

import (
	"time"

	"github.com/artizaho/workshop-booking/pkg/types"
)

// WorkshopSlotsConfig represents the booking configuration for a workshop
// Supports hierarchical configuration:
// 1. Specific workshop (artisan_id, workshop_id)
// 2. Artisan-wide (artisan_id, NULL)
// 3. Platform defaults from config.toml (PlatformPolicy)
type WorkshopSlotsConfig struct {
	ID                    int64
	ArtisanID             int64
	WorkshopID            *int64 // NULL = config for all workshops of the artisan
	SlotTimes             []types.TimeString
	MinParticipants       uint
	MaxParticipants       uint
	NonOperatingWeekdays  []time.Weekday
	AlmostFullThreshold   uint
	AdvanceBookingDays    int // 0 = unlimited
	MinNoticeBusinessDays int // 0 = no notice required
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsArtisanWide returns true if this configuration applies to every workshop of the artisan
func (c *WorkshopSlotsConfig) IsArtisanWide() bool {
	return c.WorkshopID == nil
}

// IsWorkshopSpecific returns true if this configuration is bound to one workshop
func (c *WorkshopSlotsConfig) IsWorkshopSpecific() bool {
	return c.WorkshopID != nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *WorkshopSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// RequiresNotice returns true if bookings must be made some business days ahead
func (c *WorkshopSlotsConfig) RequiresNotice() bool {
	return c.MinNoticeBusinessDays > 0
}

// IsOperatingDay returns false for configured non-operating weekdays
func (c *WorkshopSlotsConfig) IsOperatingDay(date time.Time) bool {
	wd := DateOf(date).Weekday()
	for _, closed := range c.NonOperatingWeekdays {
		if closed == wd {
			return false
		}
	}
	return true
}

// Level returns a human readable hierarchy level for logs
func (c *WorkshopSlotsConfig) Level() string {
	if c.ID == 0 {
		return "platform"
	}
	if c.IsWorkshopSpecific() {
		return "workshop"
	}
	return "artisan"
}

// PlatformPolicy platform-wide defaults used when neither the workshop nor the artisan has a config
type PlatformPolicy struct {
	SlotTimes             []types.TimeString
	MinParticipants       uint
	AlmostFullThreshold   uint
	NonOperatingWeekdays  []time.Weekday
	AdvanceBookingDays    int
	MinNoticeBusinessDays int
}

// DefaultPlatformPolicy mirrors the slot grid the booking calendar always offered
func DefaultPlatformPolicy() PlatformPolicy {
	return PlatformPolicy{
		SlotTimes:             []types.TimeString{"09:00", "11:00", "14:00", "16:00"},
		MinParticipants:       DefaultMinParticipants,
		AlmostFullThreshold:   DefaultAlmostFullThreshold,
		NonOperatingWeekdays:  DefaultNonOperatingWeekdays,
		AdvanceBookingDays:    DefaultAdvanceBookingDays,
		MinNoticeBusinessDays: DefaultMinNoticeBusinessDays,
	}
}

// ConfigFor builds an unsaved config from the platform policy.
// maxParticipants comes from the workshop catalog; 0 falls back to DefaultMaxParticipants.
func (p PlatformPolicy) ConfigFor(artisanID, workshopID int64, maxParticipants uint) *WorkshopSlotsConfig {
	if maxParticipants == 0 {
		maxParticipants = DefaultMaxParticipants
	}
	minParticipants := p.MinParticipants
	if minParticipants > maxParticipants {
		minParticipants = maxParticipants
	}

	slotTimes := make([]types.TimeString, len(p.SlotTimes))
	copy(slotTimes, p.SlotTimes)
	weekdays := make([]time.Weekday, len(p.NonOperatingWeekdays))
	copy(weekdays, p.NonOperatingWeekdays)

	return &WorkshopSlotsConfig{
		ArtisanID:             artisanID,
		WorkshopID:            &workshopID,
		SlotTimes:             slotTimes,
		MinParticipants:       minParticipants,
		MaxParticipants:       maxParticipants,
		NonOperatingWeekdays:  weekdays,
		AlmostFullThreshold:   p.AlmostFullThreshold,
		AdvanceBookingDays:    p.AdvanceBookingDays,
		MinNoticeBusinessDays: p.MinNoticeBusinessDays,
	}
}
