package delete_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/unavailability"
)

const (
	msgInvalidArtisanID = "некорректный ID мастера"
	msgInvalidPeriodID  = "некорректный ID периода"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "период не найден"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/artisans/{artisanId}/unavailability/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artisanID, err := strconv.ParseInt(vars["artisanId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /artisans/{id}/unavailability/{periodId} - Invalid artisan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtisanID)
		return
	}

	periodID, err := uuid.Parse(vars["periodId"])
	if err != nil {
		h.logger.Warn("DELETE /artisans/{id}/unavailability/{periodId} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /artisans/{id}/unavailability/{periodId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), artisanID, userID, periodID); err != nil {
		switch {
		case errors.Is(err, unavailability.ErrAccessDenied):
			h.logger.Warn("DELETE /artisans/{id}/unavailability/{periodId} - Access denied: artisan_id=%d, user_id=%d",
				artisanID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, unavailability.ErrPeriodNotFound):
			h.logger.Warn("DELETE /artisans/{id}/unavailability/{periodId} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /artisans/{id}/unavailability/{periodId} - Failed to delete: period_id=%s, error=%v",
				periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /artisans/{id}/unavailability/{periodId} - Period deleted: period_id=%s", periodID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
