package get_artisan_configs

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
	msgInvalidArtisanID = "некорректный ID мастера"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/artisans/{artisanId}/configs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID, err := strconv.ParseInt(mux.Vars(r)["artisanId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artisans/{id}/configs - Invalid artisan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtisanID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /artisans/{id}/configs - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListForArtisan(r.Context(), artisanID, userID)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("GET /artisans/{id}/configs - Access denied: artisan_id=%d, user_id=%d", artisanID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /artisans/{id}/configs - Failed to list configs: artisan_id=%d, error=%v", artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artisans/{id}/configs - Configs retrieved: artisan_id=%d, count=%d", artisanID, len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result.Configs)
}
