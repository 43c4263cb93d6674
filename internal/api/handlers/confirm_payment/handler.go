package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

const (
	msgMissingUserID     = "отсутствует ID пользователя"
	msgAccountNotFound   = "аккаунт не найден"
	msgBookingNotFound   = "бронирование не найдено"
	msgHoldExpired       = "срок действия hold истек"
	msgInsufficientFunds = "недостаточно средств на балансе"
	msgPaymentFailed     = "не удалось провести оплату"
	msgInvalidData       = "некорректные данные запроса"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		Username:  username,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrAccountNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Account not found: user=%s", username)
			handlers.RespondNotFound(w, msgAccountNotFound)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%s, user=%s",
				bookingID, username)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrHoldExpired):
			h.logger.Warn("POST /bookings/{id}/confirm - Hold expired: booking_id=%s, user=%s",
				bookingID, username)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, confirmPayment.ErrInsufficientFunds):
			h.logger.Warn("POST /bookings/{id}/confirm - Insufficient funds: booking_id=%s, user=%s",
				bookingID, username)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientFunds)

		case errors.Is(err, confirmPayment.ErrPaymentFailed):
			h.logger.Warn("POST /bookings/{id}/confirm - Payment failed: booking_id=%s, user=%s",
				bookingID, username)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/confirm - Invalid input: user=%s, error=%v", username, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm payment: booking_id=%s, user=%s, error=%v",
				bookingID, username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Payment confirmed: booking_id=%s, user=%s, price=%.2f",
		bookingID, username, result.PriceUSD)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
