package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры запроса"
	msgPageNotFound        = "страница бронирования не найдена"
	msgPageUnavailable     = "страница бронирования недоступна"
	msgBookingLimitReached = "достигнут лимит бронирований для этого посетителя"
	msgProviderUnavailable = "внешний календарь временно недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/{userAlias}/{pageAlias}/slots
// Query params: date (required, YYYY-MM-DD), visitorEmail (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userAlias := vars["userAlias"]
	pageAlias := vars["pageAlias"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var visitorEmail *string
	if email := r.URL.Query().Get("visitorEmail"); email != "" {
		visitorEmail = &email
	}

	useCaseReq, err := ToUseCaseRequest(userAlias, pageAlias, dateStr, visitorEmail)
	if err != nil {
		h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPageNotFound):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Page not found: %s/%s", userAlias, pageAlias)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, getAvailableSlots.ErrPageUnavailable):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Page unavailable: %s/%s", userAlias, pageAlias)
			handlers.RespondNotFound(w, msgPageUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrBookingLimitReached):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias}/slots - Booking limit reached: %s/%s", userAlias, pageAlias)
			handlers.RespondConflict(w, msgBookingLimitReached)

		case errors.Is(err, getAvailableSlots.ErrProviderUnavailable):
			h.logger.Error("GET /public/{userAlias}/{pageAlias}/slots - Provider unavailable: %s/%s", userAlias, pageAlias)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProviderUnavailable)

		default:
			h.logger.Error("GET /public/{userAlias}/{pageAlias}/slots - Failed to get slots: %s/%s, error=%v",
				userAlias, pageAlias, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /public/{userAlias}/{pageAlias}/slots - Slots retrieved: %s/%s, date=%s, slots_count=%d",
		userAlias, pageAlias, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
