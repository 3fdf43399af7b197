package models

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Request модели

// ListWorkshopRequestsRequest запрос мастера на получение заявок мастер-класса
type ListWorkshopRequestsRequest struct {
	UserID     int64   `json:"userId"`
	WorkshopID int64   `json:"workshopId"`
	Status     *string `json:"status,omitempty"`
}

// UpdateStatusRequest запрос мастера на рассмотрение заявки
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"` // confirmed | rejected
}

// Response модели

// CustomRequestResponse заявка на бронирование вне слотов
type CustomRequestResponse struct {
	ID                  string  `json:"id"`
	WorkshopID          int64   `json:"workshopId"`
	UserID              int64   `json:"userId"`
	PreferredDate       string  `json:"preferredDate"`
	PreferredTime       *string `json:"preferredTime,omitempty"`
	AlternativeDate     *string `json:"alternativeDate,omitempty"`
	AlternativeTime     *string `json:"alternativeTime,omitempty"`
	Participants        uint    `json:"participants"`
	IsPrivate           bool    `json:"isPrivate"`
	EstimatedPrice      *int64  `json:"estimatedPrice,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
	ContactEmail        string  `json:"contactEmail"`
	ContactPhone        *string `json:"contactPhone,omitempty"`
	Message             *string `json:"message,omitempty"`
	HasConflict         bool    `json:"hasConflict"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

// FromDomainRequest конвертирует domain модель в response
func FromDomainRequest(req *domain.CustomBookingRequest) *CustomRequestResponse {
	resp := &CustomRequestResponse{
		ID:                  req.ID.String(),
		WorkshopID:          req.WorkshopID,
		UserID:              req.UserID,
		PreferredDate:       req.PreferredDate.Format(domain.DateFormat),
		Participants:        req.Participants,
		IsPrivate:           req.IsPrivate,
		SpecialRequirements: req.SpecialRequirements,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		Message:             req.Message,
		HasConflict:         req.HasConflict,
		Status:              string(req.Status),
		CreatedAt:           req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           req.UpdatedAt.Format(time.RFC3339),
	}

	if req.PreferredTime != nil {
		s := req.PreferredTime.String()
		resp.PreferredTime = &s
	}
	if req.AlternativeDate != nil {
		s := req.AlternativeDate.Format(domain.DateFormat)
		resp.AlternativeDate = &s
	}
	if req.AlternativeTime != nil {
		s := req.AlternativeTime.String()
		resp.AlternativeTime = &s
	}
	if req.EstimatedPrice != nil {
		price := int64(*req.EstimatedPrice)
		resp.EstimatedPrice = &price
	}

	return resp
}

// FromDomainRequestList конвертирует список заявок
func FromDomainRequestList(requests []*domain.CustomBookingRequest) []*CustomRequestResponse {
	out := make([]*CustomRequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, FromDomainRequest(req))
	}
	return out
}
