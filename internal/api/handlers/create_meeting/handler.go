package create_meeting

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	meetingsService "github.com/m04kA/SMC-SchedulingService/internal/service/meetings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры встречи"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgCalendarNotFound   = "календарь не найден"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service MeetingsService
	logger  Logger
}

func NewHandler(service MeetingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrInvalidTimeRange):
			h.logger.Warn("POST /meetings - Invalid time range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, meetingsService.ErrCalendarNotFound):
			h.logger.Warn("POST /meetings - Calendar not found: user_id=%d, calendar_id=%d", userID, req.CalendarID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, meetingsService.ErrAccessDenied):
			h.logger.Warn("POST /meetings - Access denied: user_id=%d, calendar_id=%d", userID, req.CalendarID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, meetingsService.ErrInvalidInput):
			h.logger.Warn("POST /meetings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /meetings - Failed to create meeting: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meetings - Meeting created: meeting_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
