package get_public_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	pagesService "github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages"
)

const (
	msgPageNotFound = "страница бронирования не найдена"
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

// Handle GET /api/v1/public/{userAlias}/{pageAlias}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userAlias := vars["userAlias"]
	pageAlias := vars["pageAlias"]

	result, err := h.service.GetPublicByAliases(r.Context(), userAlias, pageAlias)
	if err != nil {
		switch {
		case errors.Is(err, pagesService.ErrPageNotFound):
			h.logger.Warn("GET /public/{userAlias}/{pageAlias} - Page not found: %s/%s", userAlias, pageAlias)
			handlers.RespondNotFound(w, msgPageNotFound)

		default:
			h.logger.Error("GET /public/{userAlias}/{pageAlias} - Failed to get page %s/%s: %v", userAlias, pageAlias, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/{userAlias}/{pageAlias} - Page retrieved: %s/%s", userAlias, pageAlias)
	handlers.RespondJSON(w, http.StatusOK, result)
}
