package list_teams

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

type Handler struct {
	service TeamsService
	logger  Logger
}

func NewHandler(service TeamsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/teams
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /teams - Failed to list teams: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /teams - Teams listed: user_id=%d, count=%d", userID, len(result.Teams))
	handlers.RespondJSON(w, http.StatusOK, result)
}
