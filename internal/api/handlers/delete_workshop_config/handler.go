package delete_workshop_config

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
	msgInvalidWorkshopID = "некорректный ID мастер-класса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgWorkshopNotFound  = "мастер-класс не найден"
	msgNotFound          = "у мастер-класса нет собственной конфигурации"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/workshops/{workshopId}/config
// После удаления мастер-класс использует конфигурацию мастера или платформы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID, err := strconv.ParseInt(mux.Vars(r)["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /workshops/{id}/config - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /workshops/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteForWorkshop(r.Context(), workshopID, userID); err != nil {
		switch {
		case errors.Is(err, config.ErrWorkshopNotFound):
			h.logger.Warn("DELETE /workshops/{id}/config - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("DELETE /workshops/{id}/config - No own config: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("DELETE /workshops/{id}/config - Access denied: workshop_id=%d, user_id=%d", workshopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /workshops/{id}/config - Failed to delete config: workshop_id=%d, error=%v", workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /workshops/{id}/config - Config deleted: workshop_id=%d", workshopID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
