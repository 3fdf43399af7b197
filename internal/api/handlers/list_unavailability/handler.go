package list_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/service/unavailability"
	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

const (
	msgInvalidArtisanID = "некорректный ID мастера"
	msgInvalidFrom      = "некорректный формат даты from, ожидается YYYY-MM-DD"
	msgInvalidLimit     = "некорректный limit"
)

type Handler struct {
	service UnavailabilityService
	logger  Logger
}

func NewHandler(service UnavailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/artisans/{artisanId}/unavailability
// Query params: from (YYYY-MM-DD), limit (опционально)
// Анонимно видны только одобренные периоды, сам мастер видит все свои
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID, err := strconv.ParseInt(mux.Vars(r)["artisanId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artisans/{id}/unavailability - Invalid artisan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtisanID)
		return
	}

	serviceReq := &models.ListUpcomingRequest{ArtisanID: artisanID}
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		serviceReq.RequesterID = &userID
	}

	query := r.URL.Query()
	if fromStr := query.Get("from"); fromStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			h.logger.Warn("GET /artisans/{id}/unavailability - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		serviceReq.From = &from
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 32)
		if err != nil {
			h.logger.Warn("GET /artisans/{id}/unavailability - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		serviceReq.Limit = uint(limit)
	}

	result, err := h.service.ListUpcoming(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrInvalidInput):
			h.logger.Warn("GET /artisans/{id}/unavailability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /artisans/{id}/unavailability - Failed to list periods: artisan_id=%d, error=%v",
				artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artisans/{id}/unavailability - Periods retrieved: artisan_id=%d, count=%d",
		artisanID, len(result.Periods))
	handlers.RespondJSON(w, http.StatusOK, result.Periods)
}
