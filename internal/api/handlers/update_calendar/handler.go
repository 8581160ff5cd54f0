package update_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	calendarsService "github.com/m04kA/SMC-SchedulingService/internal/service/calendars"
)

const (
	msgInvalidCalendarID  = "некорректный ID календаря"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные календаря"
	msgCalendarNotFound   = "календарь не найден"
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

// Handle PATCH /api/v1/calendars/{calendarId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	calendarID, err := strconv.ParseInt(mux.Vars(r)["calendarId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /calendars/{calendarId} - Invalid calendar ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /calendars/{calendarId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), calendarID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, calendarsService.ErrCalendarNotFound):
			h.logger.Warn("PATCH /calendars/{calendarId} - Calendar not found: calendar_id=%d, user_id=%d", calendarID, userID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, calendarsService.ErrAliasTaken):
			h.logger.Warn("PATCH /calendars/{calendarId} - Alias taken: calendar_id=%d, user_id=%d", calendarID, userID)
			handlers.RespondConflict(w, msgAliasTaken)

		case errors.Is(err, calendarsService.ErrInvalidInput):
			h.logger.Warn("PATCH /calendars/{calendarId} - Invalid input: calendar_id=%d, user_id=%d, error=%v", calendarID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /calendars/{calendarId} - Failed to update calendar: calendar_id=%d, user_id=%d, error=%v", calendarID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /calendars/{calendarId} - Calendar updated: calendar_id=%d, user_id=%d", calendarID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
