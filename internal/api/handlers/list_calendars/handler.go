package list_calendars

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
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

// Handle GET /api/v1/calendars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /calendars - Failed to list calendars: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendars - Calendars listed: user_id=%d, count=%d", userID, len(result.Calendars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
