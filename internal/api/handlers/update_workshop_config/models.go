package update_workshop_config

import (
	"github.com/artizaho/workshop-booking/internal/service/config/models"
)

// UpdateConfigRequest HTTP request model
// Переданные поля обновляются, остальные наследуются от действующей конфигурации
type UpdateConfigRequest struct {
	SlotTimes             *[]string `json:"slotTimes,omitempty"`
	MinParticipants       *uint     `json:"minParticipants,omitempty"`
	MaxParticipants       *uint     `json:"maxParticipants,omitempty"`
	NonOperatingWeekdays  *[]int    `json:"nonOperatingWeekdays,omitempty"`
	AlmostFullThreshold   *uint     `json:"almostFullThreshold,omitempty"`
	AdvanceBookingDays    *int      `json:"advanceBookingDays,omitempty"`
	MinNoticeBusinessDays *int      `json:"minNoticeBusinessDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(userID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                userID,
		SlotTimes:             r.SlotTimes,
		MinParticipants:       r.MinParticipants,
		MaxParticipants:       r.MaxParticipants,
		NonOperatingWeekdays:  r.NonOperatingWeekdays,
		AlmostFullThreshold:   r.AlmostFullThreshold,
		AdvanceBookingDays:    r.AdvanceBookingDays,
		MinNoticeBusinessDays: r.MinNoticeBusinessDays,
	}
}
