package manage_blacklist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	blacklistService "github.com/m04kA/SMC-SchedulingService/internal/service/blacklist"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blacklist/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный алиас"
	msgAlreadyBlocked     = "алиас уже заблокирован"
	msgEntryNotFound      = "алиас не найден в черном списке"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service BlacklistService
	logger  Logger
}

func NewHandler(service BlacklistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/blacklist
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, blacklistService.ErrAccessDenied):
			h.logger.Warn("GET /admin/blacklist - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/blacklist - Failed to list blacklist: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blacklist - Blacklist listed: admin_id=%d, count=%d", userID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/blacklist
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req AddEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blacklist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, blacklistService.ErrAccessDenied):
			h.logger.Warn("POST /admin/blacklist - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, blacklistService.ErrAliasAlreadyBlocked):
			h.logger.Warn("POST /admin/blacklist - Alias already blocked: alias=%s", req.Alias)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, blacklistService.ErrInvalidInput):
			h.logger.Warn("POST /admin/blacklist - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blacklist - Failed to add entry: alias=%s, error=%v", req.Alias, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blacklist - Alias blocked: alias=%s, admin_id=%d", result.Alias, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/blacklist/{alias}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	alias := mux.Vars(r)["alias"]

	err := h.service.Remove(r.Context(), &models.RemoveEntryRequest{UserID: userID, Alias: alias})
	if err != nil {
		switch {
		case errors.Is(err, blacklistService.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/blacklist/{alias} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, blacklistService.ErrEntryNotFound):
			h.logger.Warn("DELETE /admin/blacklist/{alias} - Entry not found: alias=%s", alias)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /admin/blacklist/{alias} - Failed to remove entry: alias=%s, error=%v", alias, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blacklist/{alias} - Alias unblocked: alias=%s, admin_id=%d", alias, userID)
	handlers.RespondNoContent(w)
}
