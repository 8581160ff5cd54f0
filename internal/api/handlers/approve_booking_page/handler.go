package approve_booking_page

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
	msgInvalidPageID      = "некорректный ID страницы"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPageNotFound       = "страница бронирования не найдена"
	msgAccessDenied       = "доступ запрещен"
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

// Handle PATCH /api/v1/admin/booking-pages/{pageId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	pageID, err := strconv.ParseInt(mux.Vars(r)["pageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/booking-pages/{pageId}/approve - Invalid page ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPageID)
		return
	}

	var req ApprovePageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/booking-pages/{pageId}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Approve(r.Context(), pageID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrPageNotFound):
			h.logger.Warn("PATCH /admin/booking-pages/{pageId}/approve - Page not found: page_id=%d", pageID)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, pagesService.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/booking-pages/{pageId}/approve - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /admin/booking-pages/{pageId}/approve - Failed to approve page: page_id=%d, error=%v", pageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/booking-pages/{pageId}/approve - Page approval updated: page_id=%d, approved=%t, admin_id=%d",
		pageID, req.Approved, userID)
	handlers.RespondNoContent(w)
}
