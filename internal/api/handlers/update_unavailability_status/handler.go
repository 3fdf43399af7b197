package update_unavailability_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/service/unavailability"
	"github.com/artizaho/workshop-booking/internal/service/unavailability/models"
)

const (
	msgInvalidPeriodID    = "некорректный ID периода"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус периода"
	msgNotFound           = "период не найден"
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

// Handle PATCH /api/v1/admin/unavailability/{periodId}/status
// Доступ проверяет middleware AdminAuth
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/unavailability/{id}/status - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	var req models.UpdatePeriodStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/unavailability/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), periodID, &req)
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/unavailability/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, unavailability.ErrPeriodNotFound):
			h.logger.Warn("PATCH /admin/unavailability/{id}/status - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/unavailability/{id}/status - Failed to set status: period_id=%s, error=%v",
				periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/unavailability/{id}/status - Status set: period_id=%s, status=%s", periodID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
