package get_selectable_dates

import (
	"context"
	"fmt"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// UseCase use case календаря доступных для выбора дат
type UseCase struct {
	calendarLoader CalendarLoader
	clock          Clock
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendarLoader CalendarLoader, clock Clock, logger Logger) *UseCase {
	return &UseCase{
		calendarLoader: calendarLoader,
		clock:          clock,
		logger:         logger,
	}
}

// Execute вычисляет доступность дней начиная с From
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.WorkshopID <= 0 {
		return nil, fmt.Errorf("%w: workshopID must be positive", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultCalendarDays
	}
	if days > domain.MaxCalendarDays {
		uc.logger.Warn("GetSelectableDates: days=%d exceeds %d", days, domain.MaxCalendarDays)
		return nil, fmt.Errorf("%w: days must be at most %d", ErrInvalidInput, domain.MaxCalendarDays)
	}

	from := domain.DateOf(uc.clock.Now())
	if req.From != nil {
		from = domain.DateOf(*req.From)
	}
	to := from.AddDate(0, 0, int(days)-1)

	uc.logger.Info("GetSelectableDates: workshop=%d, %s..%s",
		req.WorkshopID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	cal, err := uc.calendarLoader.Load(ctx, req.WorkshopID, from, to)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		WorkshopID: req.WorkshopID,
		From:       from,
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		resp.Days = append(resp.Days, cal.Day(d))
	}

	return resp, nil
}
