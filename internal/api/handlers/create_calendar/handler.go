package create_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	calendarsService "github.com/m04kA/SMC-SchedulingService/internal/service/calendars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные календаря"
	msgAliasTaken         = "алиас календаря уже занят"
)

type Handler struct {
	service CalendarsService
	logger  Logger
}

func NewHandler(service CalendarsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, calendarsService.ErrAliasTaken):
			h.logger.Warn("POST /calendars - Alias taken: alias=%s, user_id=%d", req.Alias, userID)
			handlers.RespondConflict(w, msgAliasTaken)

		case errors.Is(err, calendarsService.ErrInvalidInput):
			h.logger.Warn("POST /calendars - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calendars - Failed to create calendar: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendars - Calendar created: calendar_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
