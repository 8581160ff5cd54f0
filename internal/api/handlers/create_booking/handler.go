package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC 3339"
	msgInvalidInput        = "некорректные данные бронирования"
	msgPageNotFound        = "страница бронирования не найдена"
	msgPageUnavailable     = "страница бронирования недоступна"
	msgSlotConflict        = "выбранный временной слот недоступен"
	msgBookingLimitReached = "достигнут лимит бронирований для этого посетителя"
	msgInvalidBookingTime  = "время бронирования в прошлом"
	msgProviderUnavailable = "внешний календарь временно недоступен"
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

// Handle POST /api/v1/public/{userAlias}/{pageAlias}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userAlias := vars["userAlias"]
	pageAlias := vars["pageAlias"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userAlias, pageAlias)
	if err != nil {
		h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Slot conflict: %s/%s, start=%s",
				userAlias, pageAlias, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrBookingLimitReached):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Booking limit reached: %s/%s", userAlias, pageAlias)
			handlers.RespondConflict(w, msgBookingLimitReached)

		case errors.Is(err, createBooking.ErrPageNotFound):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Page not found: %s/%s", userAlias, pageAlias)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, createBooking.ErrPageUnavailable):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Page unavailable: %s/%s", userAlias, pageAlias)
			handlers.RespondNotFound(w, msgPageUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Booking time in the past: %s/%s", userAlias, pageAlias)
			handlers.RespondBadRequest(w, msgInvalidBookingTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /public/{userAlias}/{pageAlias}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrProviderUnavailable):
			h.logger.Error("POST /public/{userAlias}/{pageAlias}/bookings - Provider unavailable: %s/%s", userAlias, pageAlias)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProviderUnavailable)

		default:
			h.logger.Error("POST /public/{userAlias}/{pageAlias}/bookings - Failed to create booking: %s/%s, error=%v",
				userAlias, pageAlias, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /public/{userAlias}/{pageAlias}/bookings - Booking created: booking_id=%d, page=%s/%s",
		result.ID, userAlias, pageAlias)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
