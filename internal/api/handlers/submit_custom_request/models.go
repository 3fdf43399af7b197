package submit_custom_request

import (
	"errors"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	submitRequest "github.com/artizaho/workshop-booking/internal/usecase/submit_custom_request"
	"github.com/artizaho/workshop-booking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CustomRequest HTTP request model
type CustomRequest struct {
	WorkshopID          int64   `json:"workshopId"`
	PreferredDate       string  `json:"preferredDate"`           // "2026-08-20"
	PreferredTime       *string `json:"preferredTime,omitempty"` // "10:30"
	AlternativeDate     *string `json:"alternativeDate,omitempty"`
	AlternativeTime     *string `json:"alternativeTime,omitempty"`
	Participants        uint    `json:"participants"`
	IsPrivate           bool    `json:"isPrivate"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
	ContactEmail        string  `json:"contactEmail"`
	ContactPhone        *string `json:"contactPhone,omitempty"`
	Message             *string `json:"message,omitempty"`
}

// CustomRequestResponse HTTP response model
type CustomRequestResponse struct {
	ID              string  `json:"id"`
	WorkshopID      int64   `json:"workshopId"`
	UserID          int64   `json:"userId"`
	PreferredDate   string  `json:"preferredDate"`
	PreferredTime   *string `json:"preferredTime,omitempty"`
	AlternativeDate *string `json:"alternativeDate,omitempty"`
	AlternativeTime *string `json:"alternativeTime,omitempty"`
	Participants    uint    `json:"participants"`
	IsPrivate       bool    `json:"isPrivate"`
	EstimatedPrice  *int64  `json:"estimatedPrice,omitempty"` // Ариари
	HasConflict     bool    `json:"hasConflict"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CustomRequest) ToUseCaseRequest(userID int64) (*submitRequest.Request, error) {
	preferredDate, err := domain.ParseDate(r.PreferredDate)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &submitRequest.Request{
		UserID:              userID,
		WorkshopID:          r.WorkshopID,
		PreferredDate:       preferredDate,
		Participants:        r.Participants,
		IsPrivate:           r.IsPrivate,
		SpecialRequirements: r.SpecialRequirements,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		Message:             r.Message,
	}

	if r.AlternativeDate != nil {
		alternative, err := domain.ParseDate(*r.AlternativeDate)
		if err != nil {
			return nil, errInvalidDate
		}
		req.AlternativeDate = &alternative
	}

	if req.PreferredTime, err = parseOptionalTime(r.PreferredTime); err != nil {
		return nil, err
	}
	if req.AlternativeTime, err = parseOptionalTime(r.AlternativeTime); err != nil {
		return nil, err
	}

	return req, nil
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, errInvalidTime
	}
	return &t, nil
}

func formatOptionalTime(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitRequest.Response) *CustomRequestResponse {
	out := &CustomRequestResponse{
		ID:              resp.ID.String(),
		WorkshopID:      resp.WorkshopID,
		UserID:          resp.UserID,
		PreferredDate:   resp.PreferredDate.Format(domain.DateFormat),
		PreferredTime:   formatOptionalTime(resp.PreferredTime),
		AlternativeTime: formatOptionalTime(resp.AlternativeTime),
		Participants:    resp.Participants,
		IsPrivate:       resp.IsPrivate,
		EstimatedPrice:  resp.EstimatedPrice,
		HasConflict:     resp.HasConflict,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.AlternativeDate != nil {
		alternative := resp.AlternativeDate.Format(domain.DateFormat)
		out.AlternativeDate = &alternative
	}
	return out
}
