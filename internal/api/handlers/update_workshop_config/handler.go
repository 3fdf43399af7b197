package update_workshop_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/config"
)

const (
	msgInvalidWorkshopID  = "некорректный ID мастер-класса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgWorkshopNotFound   = "мастер-класс не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные конфигурации"
	msgConflict           = "конфигурация уже существует"
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

// Handle PUT /api/v1/workshops/{workshopId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем workshopId из URL
	vars := mux.Vars(r)
	workshopIDStr := vars["workshopId"]

	workshopID, err := strconv.ParseInt(workshopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /workshops/{id}/config - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /workshops/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /workshops/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сервис сам проверит, что пользователь - мастер мастер-класса
	result, err := h.service.UpsertForWorkshop(r.Context(), workshopID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrWorkshopNotFound):
			h.logger.Warn("PUT /workshops/{id}/config - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("PUT /workshops/{id}/config - Access denied: workshop_id=%d, user_id=%d",
				workshopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /workshops/{id}/config - Invalid data: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, config.ErrConfigAlreadyExists):
			h.logger.Warn("PUT /workshops/{id}/config - Concurrent create: workshop_id=%d", workshopID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /workshops/{id}/config - Failed to update config: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /workshops/{id}/config - Config updated successfully: workshop_id=%d, config_id=%d",
		workshopID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
