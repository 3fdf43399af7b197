package create_booking

import (
	"errors"
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	createBooking "github.com/artizaho/workshop-booking/internal/usecase/create_booking"
	"github.com/artizaho/workshop-booking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid booking date")
	errInvalidTime = errors.New("invalid start time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	WorkshopID   int64   `json:"workshopId"`
	BookingDate  string  `json:"bookingDate"` // "2026-08-20"
	StartTime    string  `json:"startTime"`   // "14:00"
	Participants uint    `json:"participants"`
	IsPrivate    bool    `json:"isPrivate"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	WorkshopID    int64   `json:"workshopId"`
	ArtisanID     int64   `json:"artisanId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	Participants  uint    `json:"participants"`
	IsPrivate     bool    `json:"isPrivate"`
	Status        string  `json:"status"`
	WorkshopTitle string  `json:"workshopTitle"`
	TotalPrice    int64   `json:"totalPrice"` // Ариари
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := domain.ParseDate(r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		UserID:       userID,
		WorkshopID:   r.WorkshopID,
		Date:         bookingDate,
		StartTime:    startTime,
		Participants: r.Participants,
		IsPrivate:    r.IsPrivate,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		WorkshopID:    resp.WorkshopID,
		ArtisanID:     resp.ArtisanID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Participants:  resp.Participants,
		IsPrivate:     resp.IsPrivate,
		Status:        resp.Status,
		WorkshopTitle: resp.WorkshopTitle,
		TotalPrice:    resp.TotalPrice,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
