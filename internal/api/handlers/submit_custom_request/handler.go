package submit_custom_request

import (
	"errors"
	"net/http"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	submitRequest "github.com/artizaho/workshop-booking/internal/usecase/submit_custom_request"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput          = "некорректные параметры заявки"
	msgWorkshopNotFound      = "мастер-класс не найден"
	msgPastDate              = "дата заявки уже прошла"
	msgPrivatizationDisabled = "мастер-класс недоступен для приватизации"
	msgInvalidGroupSize      = "число участников вне границ приватизации"
)

type Handler struct {
	useCase SubmitCustomRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitCustomRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/custom-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /custom-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CustomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /custom-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /custom-requests - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrWorkshopNotFound):
			h.logger.Warn("POST /custom-requests - Workshop not found: workshop_id=%d", req.WorkshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, submitRequest.ErrPastDate):
			h.logger.Warn("POST /custom-requests - Past date: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, submitRequest.ErrPrivatizationDisabled):
			h.logger.Warn("POST /custom-requests - Privatization disabled: workshop_id=%d", req.WorkshopID)
			handlers.RespondBadRequest(w, msgPrivatizationDisabled)

		case errors.Is(err, submitRequest.ErrInvalidParticipants):
			h.logger.Warn("POST /custom-requests - Invalid private group size: workshop_id=%d, participants=%d",
				req.WorkshopID, req.Participants)
			handlers.RespondBadRequest(w, msgInvalidGroupSize)

		case errors.Is(err, submitRequest.ErrInvalidInput):
			h.logger.Warn("POST /custom-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /custom-requests - Failed to submit request: user_id=%d, workshop_id=%d, error=%v",
				userID, req.WorkshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.HasConflict {
		h.logger.Info("POST /custom-requests - Request overlaps artisan unavailability: request_id=%s", result.ID)
	}

	h.logger.Info("POST /custom-requests - Request submitted: request_id=%s, user_id=%d, workshop_id=%d",
		result.ID, userID, req.WorkshopID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
