package submit_custom_request

import (
	"time"

	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// Request модель заявки на бронирование вне слотов
type Request struct {
	UserID              int64             `validate:"gt=0"`
	WorkshopID          int64             `validate:"gt=0"`
	PreferredDate       time.Time         `validate:"required"`
	PreferredTime       *types.TimeString `validate:"omitempty,timestring"`
	AlternativeDate     *time.Time        `validate:"required_with=AlternativeTime"`
	AlternativeTime     *types.TimeString `validate:"omitempty,timestring"`
	Participants        uint              `validate:"min=1,max=50"`
	IsPrivate           bool
	SpecialRequirements *string `validate:"omitempty,max=500"`
	ContactEmail        string  `validate:"required,email"`
	ContactPhone        *string
	Message             *string `validate:"omitempty,max=500"`
}

// toDomain переводит запрос в доменную заявку со статусом pending
func (r *Request) toDomain() *domain.CustomBookingRequest {
	req := &domain.CustomBookingRequest{
		WorkshopID:          r.WorkshopID,
		UserID:              r.UserID,
		PreferredDate:       domain.DateOf(r.PreferredDate),
		PreferredTime:       r.PreferredTime,
		AlternativeTime:     r.AlternativeTime,
		Participants:        r.Participants,
		IsPrivate:           r.IsPrivate,
		SpecialRequirements: r.SpecialRequirements,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		Message:             r.Message,
		Status:              domain.CustomRequestPending,
	}
	if r.AlternativeDate != nil {
		alternative := domain.DateOf(*r.AlternativeDate)
		req.AlternativeDate = &alternative
	}
	return req
}

// Response сохраненная заявка
// HasConflict - предупреждение для мастера, заявка все равно принята
type Response struct {
	ID              uuid.UUID
	WorkshopID      int64
	UserID          int64
	PreferredDate   time.Time
	PreferredTime   *types.TimeString
	AlternativeDate *time.Time
	AlternativeTime *types.TimeString
	Participants    uint
	IsPrivate       bool
	EstimatedPrice  *int64
	HasConflict     bool
	Status          string
	CreatedAt       time.Time
}

func fromDomain(req *domain.CustomBookingRequest) *Response {
	resp := &Response{
		ID:              req.ID,
		WorkshopID:      req.WorkshopID,
		UserID:          req.UserID,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		AlternativeDate: req.AlternativeDate,
		AlternativeTime: req.AlternativeTime,
		Participants:    req.Participants,
		IsPrivate:       req.IsPrivate,
		HasConflict:     req.HasConflict,
		Status:          string(req.Status),
		CreatedAt:       req.CreatedAt,
	}
	if req.EstimatedPrice != nil {
		price := int64(*req.EstimatedPrice)
		resp.EstimatedPrice = &price
	}
	return resp
}
