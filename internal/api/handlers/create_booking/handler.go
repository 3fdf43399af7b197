package create_booking

import (
	"errors"
	"net/http"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	createBooking "github.com/artizaho/workshop-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput          = "некорректные параметры бронирования"
	msgWorkshopNotFound      = "мастер-класс не найден"
	msgPastDate              = "дата бронирования уже прошла"
	msgNonOperatingDay       = "мастер-класс не проводится в этот день недели"
	msgTooFarInAdvance       = "дата бронирования слишком далеко в будущем"
	msgInsufficientNotice    = "слишком поздно для бронирования на эту дату"
	msgInvalidTimeSlot       = "некорректный временной слот"
	msgArtisanUnavailable    = "мастер недоступен в выбранную дату"
	msgSlotNotAvailable      = "в выбранном слоте недостаточно мест"
	msgPrivatizationDisabled = "мастер-класс недоступен для приватизации"
	msgInvalidGroupSize      = "число участников вне границ приватизации"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
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
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrArtisanUnavailable):
			h.logger.Warn("POST /bookings - Artisan unavailable: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondConflict(w, msgArtisanUnavailable)

		case errors.Is(err, createBooking.ErrWorkshopNotFound):
			h.logger.Warn("POST /bookings - Workshop not found: workshop_id=%d", req.WorkshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrNonOperatingDay):
			h.logger.Warn("POST /bookings - Non-operating day: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgNonOperatingDay)

		case errors.Is(err, createBooking.ErrTooFarInAdvance):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgTooFarInAdvance)

		case errors.Is(err, createBooking.ErrInsufficientNotice):
			h.logger.Warn("POST /bookings - Insufficient notice: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, workshop_id=%d", userID, req.WorkshopID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPrivatizationDisabled):
			h.logger.Warn("POST /bookings - Privatization disabled: workshop_id=%d", req.WorkshopID)
			handlers.RespondBadRequest(w, msgPrivatizationDisabled)

		case errors.Is(err, createBooking.ErrInvalidParticipants):
			h.logger.Warn("POST /bookings - Invalid private group size: workshop_id=%d, participants=%d",
				req.WorkshopID, req.Participants)
			handlers.RespondBadRequest(w, msgInvalidGroupSize)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, workshop_id=%d, error=%v",
				userID, req.WorkshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, workshop_id=%d",
		result.ID, userID, req.WorkshopID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
