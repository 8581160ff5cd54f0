package get_booking_page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	pagesService "github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages"
)

const (
	msgInvalidPageID = "некорректный ID страницы"
	msgPageNotFound  = "страница бронирования не найдена"
	msgAccessDenied  = "доступ запрещен"
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

// Handle GET /api/v1/booking-pages/{pageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	pageID, err := strconv.ParseInt(mux.Vars(r)["pageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-pages/{pageId} - Invalid page ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPageID)
		return
	}

	result, err := h.service.GetByID(r.Context(), pageID, userID)
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrPageNotFound):
			h.logger.Warn("GET /booking-pages/{pageId} - Page not found: page_id=%d", pageID)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, pagesService.ErrAccessDenied):
			h.logger.Warn("GET /booking-pages/{pageId} - Access denied: user_id=%d, page_id=%d", userID, pageID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /booking-pages/{pageId} - Failed to get page: page_id=%d, error=%v", pageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-pages/{pageId} - Page retrieved: page_id=%d, user_id=%d", pageID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
