package catalogservice

import "github.com/artizaho/workshop-booking/internal/domain"

// Статусы публикации мастер-класса
const (
	WorkshopStatusDraft     = "draft"
	WorkshopStatusPublished = "published"
	WorkshopStatusCancelled = "cancelled"
)

// Workshop модель мастер-класса из каталога
// Цены в ариари
type Workshop struct {
	ID                   int64                 `json:"id"`
	ArtisanID            int64                 `json:"artisan_id"`
	Title                string                `json:"title"`
	DurationHours        float64               `json:"duration_hours"`
	BasePrice            int64                 `json:"base_price"`
	MaxParticipants      uint                  `json:"max_participants"`
	PrivatizationEnabled bool                  `json:"privatization_enabled"`
	PrivatizationOptions *PrivatizationOptions `json:"privatization_options,omitempty"`
	Status               string                `json:"status"`
}

// PrivatizationOptions условия приватизации мастер-класса
type PrivatizationOptions struct {
	MinParticipants     uint   `json:"min_participants"`
	MaxParticipants     uint   `json:"max_participants"`
	BasePrice           int64  `json:"base_price"`
	PricePerParticipant int64  `json:"price_per_participant"`
	Description         string `json:"description,omitempty"`
}

// IsPublished true, если мастер-класс доступен для бронирования
func (w *Workshop) IsPublished() bool {
	return w.Status == WorkshopStatusPublished
}

// Privatization возвращает доменную опцию приватизации
// nil, если приватизация отключена или условия не заданы
func (w *Workshop) Privatization() *domain.PrivatizationOption {
	if !w.PrivatizationEnabled || w.PrivatizationOptions == nil {
		return nil
	}
	return &domain.PrivatizationOption{
		MinParticipants:     w.PrivatizationOptions.MinParticipants,
		MaxParticipants:     w.PrivatizationOptions.MaxParticipants,
		BasePrice:           domain.Ariary(w.PrivatizationOptions.BasePrice),
		PricePerParticipant: domain.Ariary(w.PrivatizationOptions.PricePerParticipant),
		Description:         w.PrivatizationOptions.Description,
	}
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
