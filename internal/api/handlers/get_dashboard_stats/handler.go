package get_dashboard_stats

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to get stats: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Stats computed: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
