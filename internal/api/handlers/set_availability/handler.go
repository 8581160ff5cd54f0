package set_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректное правило расписания"
	msgInvalidInput       = "некорректные параметры расписания"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req SetWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWeek(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidRule):
			h.logger.Warn("PUT /availability - Invalid rule: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /availability - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /availability - Failed to set availability: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Availability replaced: user_id=%d, rules=%d", userID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
