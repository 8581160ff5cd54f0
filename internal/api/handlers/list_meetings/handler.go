package list_meetings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	meetingsService "github.com/m04kA/SMC-SchedulingService/internal/service/meetings"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
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

// Handle GET /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	req, err := ToServiceRequest(userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /meetings - Invalid query: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrInvalidInput):
			h.logger.Warn("GET /meetings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /meetings - Failed to list meetings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meetings - Meetings listed: user_id=%d, count=%d", userID, len(result.Meetings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
