package get_selectable_dates

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
)

// Request модель запроса календаря дат
type Request struct {
	WorkshopID int64
	From       *time.Time // nil - сегодня
	Days       uint       // 0 - domain.DefaultCalendarDays
}

// Response доступность каждого дня окна [From, From+Days)
type Response struct {
	WorkshopID int64
	From       time.Time
	Days       []calendar.DayStatus
}
