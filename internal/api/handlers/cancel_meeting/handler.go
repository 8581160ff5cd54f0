package cancel_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	meetingsService "github.com/m04kA/SMC-SchedulingService/internal/service/meetings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

const (
	msgInvalidMeetingID = "некорректный ID встречи"
	msgMeetingNotFound  = "встреча не найдена"
	msgCannotCancel     = "встречу нельзя отменить"
	msgAccessDenied     = "доступ запрещен"
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

// Handle PATCH /api/v1/meetings/{meetingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /meetings/{meetingId}/cancel - Invalid meeting ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	err = h.service.Cancel(r.Context(), meetingID, &models.CancelMeetingRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("PATCH /meetings/{meetingId}/cancel - Meeting not found: meeting_id=%d", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, meetingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /meetings/{meetingId}/cancel - Access denied: user_id=%d, meeting_id=%d", userID, meetingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, meetingsService.ErrCannotCancel):
			h.logger.Warn("PATCH /meetings/{meetingId}/cancel - Cannot cancel: meeting_id=%d", meetingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /meetings/{meetingId}/cancel - Failed to cancel meeting: meeting_id=%d, error=%v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /meetings/{meetingId}/cancel - Meeting cancelled: meeting_id=%d, user_id=%d", meetingID, userID)
	handlers.RespondNoContent(w)
}
