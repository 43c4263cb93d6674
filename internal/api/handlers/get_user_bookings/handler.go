package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{username}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestingUsername, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{username}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	targetUsername := vars["username"]

	result, err := h.service.GetUserBookings(r.Context(), requestingUsername, targetUsername)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/{username}/bookings - Access denied: user=%s, target=%s",
				requestingUsername, targetUsername)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/{username}/bookings - Failed to get bookings: user=%s, error=%v",
				targetUsername, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{username}/bookings - Bookings retrieved: user=%s, count=%d",
		targetUsername, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
