package list_page_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidPageID = "некорректный ID страницы"
	msgInvalidQuery  = "некорректные параметры запроса"
	msgPageNotFound  = "страница бронирования не найдена"
	msgAccessDenied  = "доступ запрещен"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-pages/{pageId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	pageID, err := strconv.ParseInt(mux.Vars(r)["pageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-pages/{pageId}/bookings - Invalid page ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPageID)
		return
	}

	req, err := ToServiceRequest(userID, pageID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /booking-pages/{pageId}/bookings - Invalid query: page_id=%d, error=%v", pageID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetPageBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrPageNotFound):
			h.logger.Warn("GET /booking-pages/{pageId}/bookings - Page not found: page_id=%d", pageID)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /booking-pages/{pageId}/bookings - Access denied: user_id=%d, page_id=%d", userID, pageID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /booking-pages/{pageId}/bookings - Invalid input: page_id=%d, error=%v", pageID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /booking-pages/{pageId}/bookings - Failed to list bookings: page_id=%d, error=%v", pageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-pages/{pageId}/bookings - Bookings listed: page_id=%d, count=%d", pageID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
