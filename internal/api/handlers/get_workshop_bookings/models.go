package get_workshop_bookings

import (
	"fmt"
	"strconv"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date задает один день, from/to - период; date имеет приоритет
func ToServiceRequest(
	workshopID int64,
	userID int64,
	statusStr string,
	dateStr string,
	fromStr string,
	toStr string,
	includeInactiveStr string,
) (*models.GetWorkshopBookingsRequest, error) {
	req := &models.GetWorkshopBookingsRequest{
		UserID:          userID,
		WorkshopID:      workshopID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if fromStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from value: %w", err)
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := domain.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to value: %w", err)
		}
		req.EndDate = &to
	}

	if dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date value: %w", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
