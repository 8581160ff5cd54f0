package create_booking_page

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	pagesService "github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные настройки страницы"
	msgCalendarNotFound   = "календарь не найден"
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

// Handle POST /api/v1/booking-pages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreatePageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-pages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrAliasTaken):
			h.logger.Warn("POST /booking-pages - Alias taken: user_id=%d, alias=%s", userID, req.Alias)
			handlers.RespondConflict(w, msgAliasTaken)

		case errors.Is(err, pagesService.ErrAliasBlocked):
			h.logger.Warn("POST /booking-pages - Alias blocked: user_id=%d, alias=%s", userID, req.Alias)
			handlers.RespondConflict(w, msgAliasBlocked)

		case errors.Is(err, pagesService.ErrCalendarNotFound):
			h.logger.Warn("POST /booking-pages - Calendar not found: user_id=%d, calendar_id=%d", userID, req.CalendarID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, pagesService.ErrAccessDenied):
			h.logger.Warn("POST /booking-pages - Access denied: user_id=%d, calendar_id=%d", userID, req.CalendarID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, pagesService.ErrInvalidInput):
			h.logger.Warn("POST /booking-pages - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-pages - Failed to create page: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-pages - Page created: page_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
