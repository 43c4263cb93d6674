package get_account

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/accounts"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgNotFound      = "аккаунт не найден"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{username}
// Пользователь может запросить только собственный аккаунт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestingUsername, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{username} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	targetUsername := vars["username"]

	if requestingUsername != targetUsername {
		h.logger.Warn("GET /users/{username} - Access denied: user=%s, target=%s",
			requestingUsername, targetUsername)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetByUsername(r.Context(), targetUsername)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			h.logger.Warn("GET /users/{username} - Account not found: user=%s", targetUsername)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /users/{username} - Failed to get account: user=%s, error=%v",
				targetUsername, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{username} - Account retrieved: user=%s", targetUsername)
	handlers.RespondJSON(w, http.StatusOK, result)
}
