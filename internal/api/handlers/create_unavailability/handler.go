package create_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/unavailability"
	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

const (
	msgInvalidArtisanID   = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidPeriod      = "некорректный период недоступности"
	msgPastDate           = "период не может начинаться в прошлом"
)

// CreatePeriodRequest HTTP request model
type CreatePeriodRequest struct {
	Kind      string  `json:"kind"`              // single | range
	StartDate string  `json:"startDate"`         // "2026-09-04"
	EndDate   *string `json:"endDate,omitempty"` // обязательно для range
	Reason    string  `json:"reason"`
}

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

// Handle POST /api/v1/artisans/{artisanId}/unavailability
// Новый период ожидает модерации и до одобрения не блокирует бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID, err := strconv.ParseInt(mux.Vars(r)["artisanId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /artisans/{id}/unavailability - Invalid artisan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtisanID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /artisans/{id}/unavailability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreatePeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /artisans/{id}/unavailability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), artisanID, &models.CreatePeriodRequest{
		UserID:    userID,
		Kind:      req.Kind,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrAccessDenied):
			h.logger.Warn("POST /artisans/{id}/unavailability - Access denied: artisan_id=%d, user_id=%d", artisanID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, unavailability.ErrInvalidInput):
			h.logger.Warn("POST /artisans/{id}/unavailability - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, unavailability.ErrPastDate):
			h.logger.Warn("POST /artisans/{id}/unavailability - Past start date: %s", req.StartDate)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("POST /artisans/{id}/unavailability - Failed to create period: artisan_id=%d, error=%v", artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artisans/{id}/unavailability - Period created: artisan_id=%d, period_id=%s", artisanID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
