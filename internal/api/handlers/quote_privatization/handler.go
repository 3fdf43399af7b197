package quote_privatization

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	quotePrivatization "github.com/artizaho/workshop-booking/internal/usecase/quote_privatization"
)

const (
	msgInvalidWorkshopID     = "некорректный ID мастер-класса"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "некорректные параметры запроса"
	msgWorkshopNotFound      = "мастер-класс не найден"
	msgPrivatizationDisabled = "мастер-класс недоступен для приватизации"
	msgInvalidGroupSize      = "число участников вне границ приватизации"
)

type Handler struct {
	useCase QuotePrivatizationUseCase
	logger  Logger
}

func NewHandler(useCase QuotePrivatizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workshops/{workshopId}/privatization-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workshopID, err := strconv.ParseInt(mux.Vars(r)["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workshops/{id}/privatization-quote - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workshops/{id}/privatization-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quotePrivatization.Request{
		WorkshopID:   workshopID,
		Participants: req.Participants,
	})
	if err != nil {
		switch {
		case errors.Is(err, quotePrivatization.ErrInvalidInput):
			h.logger.Warn("POST /workshops/{id}/privatization-quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrivatization.ErrWorkshopNotFound):
			h.logger.Warn("POST /workshops/{id}/privatization-quote - Workshop not found: workshop_id=%d", workshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, quotePrivatization.ErrPrivatizationDisabled):
			h.logger.Warn("POST /workshops/{id}/privatization-quote - Privatization disabled: workshop_id=%d", workshopID)
			handlers.RespondBadRequest(w, msgPrivatizationDisabled)

		case errors.Is(err, quotePrivatization.ErrInvalidParticipants):
			h.logger.Warn("POST /workshops/{id}/privatization-quote - Invalid group size: workshop_id=%d, participants=%d",
				workshopID, req.Participants)
			handlers.RespondBadRequest(w, msgInvalidGroupSize)

		default:
			h.logger.Error("POST /workshops/{id}/privatization-quote - Failed to quote: workshop_id=%d, error=%v", workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workshops/{id}/privatization-quote - Quoted: workshop_id=%d, participants=%d, total=%d",
		workshopID, result.Participants, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
