package update_artisan_config

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
	msgInvalidArtisanID   = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle PUT /api/v1/artisans/{artisanId}/config
// Общая конфигурация мастера для мастер-классов без собственной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID, err := strconv.ParseInt(mux.Vars(r)["artisanId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /artisans/{id}/config - Invalid artisan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtisanID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /artisans/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /artisans/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertForArtisan(r.Context(), artisanID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("PUT /artisans/{id}/config - Access denied: artisan_id=%d, user_id=%d", artisanID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /artisans/{id}/config - Invalid data: artisan_id=%d, error=%v", artisanID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, config.ErrConfigAlreadyExists):
			h.logger.Warn("PUT /artisans/{id}/config - Concurrent create: artisan_id=%d", artisanID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /artisans/{id}/config - Failed to update config: artisan_id=%d, error=%v", artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /artisans/{id}/config - Config updated successfully: artisan_id=%d, config_id=%d", artisanID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
