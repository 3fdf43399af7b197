package evaluate_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	evaluateBooking "github.com/artizaho/workshop-booking/internal/usecase/evaluate_booking"
)

const (
	msgInvalidWorkshopID     = "некорректный ID мастер-класса"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput          = "некорректные параметры запроса"
	msgWorkshopNotFound      = "мастер-класс не найден"
	msgUnknownTimeSlot       = "в этот день нет такого слота"
	msgPrivatizationDisabled = "мастер-класс недоступен для приватизации"
	msgInvalidGroupSize      = "число участников вне границ приватизации"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

type Handler struct {
	useCase EvaluateBookingUseCase
	logger  Logger
}

func NewHandler(useCase EvaluateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workshops/{workshopId}/eligibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID, err := strconv.ParseInt(mux.Vars(r)["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workshops/{id}/eligibility - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	var req EvaluateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workshops/{id}/eligibility - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(workshopID)
	if err != nil {
		h.logger.Warn("POST /workshops/{id}/eligibility - Failed to parse request: %v", err)
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
		case errors.Is(err, evaluateBooking.ErrInvalidInput):
			h.logger.Warn("POST /workshops/{id}/eligibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, evaluateBooking.ErrWorkshopNotFound):
			h.logger.Warn("POST /workshops/{id}/eligibility - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, evaluateBooking.ErrUnknownTimeSlot):
			h.logger.Warn("POST /workshops/{id}/eligibility - Unknown time slot: workshop_id=%d", workshopID)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, evaluateBooking.ErrPrivatizationDisabled):
			h.logger.Warn("POST /workshops/{id}/eligibility - Privatization disabled: workshop_id=%d", workshopID)
			handlers.RespondBadRequest(w, msgPrivatizationDisabled)

		case errors.Is(err, evaluateBooking.ErrInvalidParticipants):
			h.logger.Warn("POST /workshops/{id}/eligibility - Invalid private group size: workshop_id=%d, participants=%d",
				workshopID, req.Participants)
			handlers.RespondBadRequest(w, msgInvalidGroupSize)

		default:
			h.logger.Error("POST /workshops/{id}/eligibility - Failed to evaluate: workshop_id=%d, error=%v", workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workshops/{id}/eligibility - Evaluated: workshop_id=%d, status=%s, panel=%s",
		workshopID, result.Classification.Status, result.Panel)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
