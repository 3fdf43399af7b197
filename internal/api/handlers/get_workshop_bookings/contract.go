package get_workshop_bookings

import (
	"context"

	"github.com/artizaho/workshop-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetWorkshopBookings(ctx context.Context, req *models.GetWorkshopBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
