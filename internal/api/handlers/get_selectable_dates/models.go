package get_selectable_dates

import (
	"github.com/artizaho/workshop-booking/internal/domain"
	getSelectableDates "github.com/artizaho/workshop-booking/internal/usecase/get_selectable_dates"
)

// SelectableDatesResponse HTTP response model
type SelectableDatesResponse struct {
	WorkshopID int64     `json:"workshopId"`
	From       string    `json:"from"`
	Days       []DayItem `json:"days"`
}

// DayItem доступность одного дня
type DayItem struct {
	Date              string `json:"date"`
	Selectable        bool   `json:"selectable"`
	Reason            string `json:"reason,omitempty"`
	UnavailableReason string `json:"unavailableReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSelectableDates.Response) *SelectableDatesResponse {
	days := make([]DayItem, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayItem{
			Date:              day.Date.Format(domain.DateFormat),
			Selectable:        day.Selectable,
			Reason:            day.Reason,
			UnavailableReason: day.UnavailableReason,
		}
	}

	return &SelectableDatesResponse{
		WorkshopID: resp.WorkshopID,
		From:       resp.From.Format(domain.DateFormat),
		Days:       days,
	}
}
