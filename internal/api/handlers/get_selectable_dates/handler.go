package get_selectable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/domain"
	getSelectableDates "github.com/artizaho/workshop-booking/internal/usecase/get_selectable_dates"
)

const (
	msgInvalidWorkshopID = "некорректный ID мастер-класса"
	msgInvalidFrom       = "некорректный формат даты from, ожидается YYYY-MM-DD"
	msgInvalidDays       = "некорректное число дней"
	msgWorkshopNotFound  = "мастер-класс не найден"
)

type Handler struct {
	useCase GetSelectableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetSelectableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops/{workshopId}/selectable-dates
// Query params: from (optional, YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID, err := strconv.ParseInt(mux.Vars(r)["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/selectable-dates - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	useCaseReq := &getSelectableDates.Request{WorkshopID: workshopID}
	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			h.logger.Warn("GET /workshops/{id}/selectable-dates - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		useCaseReq.From = &from
	}

	if daysStr := query.Get("days"); daysStr != "" {
		days, err := strconv.ParseUint(daysStr, 10, 32)
		if err != nil {
			h.logger.Warn("GET /workshops/{id}/selectable-dates - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		useCaseReq.Days = uint(days)
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSelectableDates.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/selectable-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getSelectableDates.ErrWorkshopNotFound):
			h.logger.Warn("GET /workshops/{id}/selectable-dates - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		default:
			h.logger.Error("GET /workshops/{id}/selectable-dates - Failed to build calendar: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workshops/{id}/selectable-dates - Calendar built: workshop_id=%d, days=%d", workshopID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
