package list_booking_pages

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

type Handler struct {
	service BookingPagesService
	logger  Logger
}

func NewHandler(service BookingPagesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-pages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /booking-pages - Failed to list pages: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-pages - Pages listed: user_id=%d, count=%d", userID, len(result.Pages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
