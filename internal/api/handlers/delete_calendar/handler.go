package delete_calendar

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
	msgInvalidCalendarID = "некорректный ID календаря"
	msgCalendarNotFound  = "календарь не найден"
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

// Handle DELETE /api/v1/calendars/{calendarId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	calendarID, err := strconv.ParseInt(mux.Vars(r)["calendarId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /calendars/{calendarId} - Invalid calendar ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	if err := h.service.Delete(r.Context(), calendarID, userID); err != nil {
		switch {
		case errors.Is(err, calendarsService.ErrCalendarNotFound):
			h.logger.Warn("DELETE /calendars/{calendarId} - Calendar not found: calendar_id=%d, user_id=%d", calendarID, userID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		default:
			h.logger.Error("DELETE /calendars/{calendarId} - Failed to delete calendar: calendar_id=%d, user_id=%d, error=%v", calendarID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendars/{calendarId} - Calendar deleted: calendar_id=%d, user_id=%d", calendarID, userID)
	handlers.RespondNoContent(w)
}
