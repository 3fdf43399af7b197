package models

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Request модели

// CreatePeriodRequest запрос мастера на объявление периода недоступности
type CreatePeriodRequest struct {
	UserID    int64   `json:"userId"`
	Kind      string  `json:"kind"`              // single | range
	StartDate string  `json:"startDate"`         // "2024-08-20"
	EndDate   *string `json:"endDate,omitempty"` // Обязательно для range
	Reason    string  `json:"reason"`
}

// UpdatePeriodStatusRequest решение модератора по периоду
type UpdatePeriodStatusRequest struct {
	Status     string  `json:"status"` // approved | rejected | pending_approval
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// ListUpcomingRequest запрос ближайших периодов мастера
type ListUpcomingRequest struct {
	ArtisanID   int64
	RequesterID *int64     // nil для анонимного запроса
	From        *time.Time // По умолчанию сегодня
	Limit       uint       // 0 = значение по умолчанию
}

// Response модели

// PeriodResponse ответ с данными периода
type PeriodResponse struct {
	ID         string    `json:"id"`
	ArtisanID  int64     `json:"artisanId"`
	Kind       string    `json:"kind"`
	StartDate  string    `json:"startDate"`
	EndDate    *string   `json:"endDate,omitempty"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	AdminNotes *string   `json:"adminNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PeriodListResponse ответ со списком периодов
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// Методы конвертации

// FromDomainPeriod конвертирует domain модель в DTO
func FromDomainPeriod(p *domain.UnavailabilityPeriod) *PeriodResponse {
	if p == nil {
		return nil
	}

	resp := &PeriodResponse{
		ID:         p.ID.String(),
		ArtisanID:  p.ArtisanID,
		Kind:       string(p.Kind),
		StartDate:  p.StartDate.Format(domain.DateFormat),
		Reason:     p.Reason,
		Status:     string(p.Status),
		AdminNotes: p.AdminNotes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if p.Kind == domain.PeriodRange && p.EndDate != nil {
		end := p.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}

	return resp
}

// FromDomainPeriodList конвертирует список domain моделей в DTO
func FromDomainPeriodList(periods []domain.UnavailabilityPeriod) *PeriodListResponse {
	resp := &PeriodListResponse{
		Periods: make([]PeriodResponse, 0, len(periods)),
	}

	for i := range periods {
		resp.Periods = append(resp.Periods, *FromDomainPeriod(&periods[i]))
	}

	return resp
}

// ToDomainPeriod разбирает даты запроса и строит domain модель
// Статус выставляет сервис
func (r *CreatePeriodRequest) ToDomainPeriod(artisanID int64) (*domain.UnavailabilityPeriod, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	period := &domain.UnavailabilityPeriod{
		ArtisanID: artisanID,
		Kind:      domain.PeriodKind(r.Kind),
		StartDate: start,
		Reason:    r.Reason,
	}

	if r.EndDate != nil && *r.EndDate != "" {
		end, err := domain.ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		period.EndDate = &end
	}

	return period, nil
}
