package list_workshop_custom_requests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/customrequests"
	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
)

const (
	msgInvalidWorkshopID = "некорректный ID мастер-класса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidStatus     = "некорректный статус заявки"
	msgWorkshopNotFound  = "мастер-класс не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service CustomRequestService
	logger  Logger
}

func NewHandler(service CustomRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops/{workshopId}/custom-requests
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID, err := strconv.ParseInt(mux.Vars(r)["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/custom-requests - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /workshops/{id}/custom-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListWorkshopRequestsRequest{UserID: userID, WorkshopID: workshopID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListWorkshopRequests(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, customrequests.ErrAccessDenied):
			h.logger.Warn("GET /workshops/{id}/custom-requests - Access denied: workshop_id=%d, user_id=%d", workshopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, customrequests.ErrWorkshopNotFound):
			h.logger.Warn("GET /workshops/{id}/custom-requests - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, customrequests.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/custom-requests - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /workshops/{id}/custom-requests - Failed to get requests: workshop_id=%d, error=%v", workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workshops/{id}/custom-requests - Requests retrieved: workshop_id=%d, count=%d", workshopID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
