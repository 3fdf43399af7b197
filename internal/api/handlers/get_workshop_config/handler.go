package get_workshop_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/service/config"
)

const (
	msgInvalidWorkshopID = "некорректный ID мастер-класса"
	msgWorkshopNotFound  = "мастер-класс не найден"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops/{workshopId}/config
// Публичный endpoint - без авторизации
// Возвращает действующую конфигурацию: мастер-класса, мастера или платформы (поле level)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workshopIDStr := vars["workshopId"]

	workshopID, err := strconv.ParseInt(workshopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/config - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	result, err := h.service.GetForWorkshop(r.Context(), workshopID)
	if err != nil {
		if errors.Is(err, config.ErrWorkshopNotFound) {
			h.logger.Warn("GET /workshops/{id}/config - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)
			return
		}

		h.logger.Error("GET /workshops/{id}/config - Failed to get config: workshop_id=%d, error=%v",
			workshopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /workshops/{id}/config - Config retrieved successfully: workshop_id=%d, level=%s",
		workshopID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
