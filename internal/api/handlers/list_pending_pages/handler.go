package list_pending_pages

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	pagesService "github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages"
)

const (
	msgAccessDenied = "доступ запрещен"
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

// Handle GET /api/v1/admin/booking-pages/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.ListPending(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrAccessDenied):
			h.logger.Warn("GET /admin/booking-pages/pending - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/booking-pages/pending - Failed to list pending pages: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/booking-pages/pending - Pending pages listed: admin_id=%d, count=%d", userID, len(result.Pages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
