package update_custom_request_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/service/customrequests"
	"github.com/artizaho/workshop-booking/internal/service/customrequests/models"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidStatus      = "некорректный статус заявки"
	msgInvalidTransition  = "заявка уже рассмотрена"
	msgNotFound           = "заявка не найдена"
	msgWorkshopNotFound   = "мастер-класс не найден"
	msgForbidden          = "доступ запрещен"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed | rejected
}

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

// Handle PATCH /api/v1/custom-requests/{requestId}/status
// Доступно только мастеру мастер-класса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(mux.Vars(r)["requestId"])
	if err != nil {
		h.logger.Warn("PATCH /custom-requests/{id}/status - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /custom-requests/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /custom-requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), requestID, &models.UpdateStatusRequest{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, customrequests.ErrInvalidInput):
			h.logger.Warn("PATCH /custom-requests/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, customrequests.ErrRequestNotFound):
			h.logger.Warn("PATCH /custom-requests/{id}/status - Request not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customrequests.ErrWorkshopNotFound):
			h.logger.Warn("PATCH /custom-requests/{id}/status - Workshop not found: request_id=%s", requestID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, customrequests.ErrAccessDenied):
			h.logger.Warn("PATCH /custom-requests/{id}/status - Access denied: request_id=%s, user_id=%d", requestID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, customrequests.ErrInvalidTransition):
			h.logger.Warn("PATCH /custom-requests/{id}/status - %v", err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /custom-requests/{id}/status - Failed to update status: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /custom-requests/{id}/status - Status updated: request_id=%s, status=%s", requestID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
