package update_booking_page

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
	msgInvalidInput       = "некорректные настройки страницы"
	msgPageNotFound       = "страница бронирования не найдена"
	msgAliasTaken         = "алиас страницы уже занят"
	msgAliasBlocked       = "этот алиас использовать нельзя"
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

// Handle PATCH /api/v1/booking-pages/{pageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	pageID, err := strconv.ParseInt(mux.Vars(r)["pageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /booking-pages/{pageId} - Invalid page ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPageID)
		return
	}

	var req UpdatePageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /booking-pages/{pageId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), pageID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrPageNotFound):
			h.logger.Warn("PATCH /booking-pages/{pageId} - Page not found: page_id=%d", pageID)
			handlers.RespondNotFound(w, msgPageNotFound)

		case errors.Is(err, pagesService.ErrAccessDenied):
			h.logger.Warn("PATCH /booking-pages/{pageId} - Access denied: user_id=%d, page_id=%d", userID, pageID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, pagesService.ErrAliasTaken):
			h.logger.Warn("PATCH /booking-pages/{pageId} - Alias taken: page_id=%d", pageID)
			handlers.RespondConflict(w, msgAliasTaken)

		case errors.Is(err, pagesService.ErrAliasBlocked):
			h.logger.Warn("PATCH /booking-pages/{pageId} - Alias blocked: page_id=%d", pageID)
			handlers.RespondConflict(w, msgAliasBlocked)

		case errors.Is(err, pagesService.ErrInvalidInput):
			h.logger.Warn("PATCH /booking-pages/{pageId} - Invalid input: page_id=%d, error=%v", pageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /booking-pages/{pageId} - Failed to update page: page_id=%d, error=%v", pageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking-pages/{pageId} - Page updated: page_id=%d, user_id=%d", pageID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
