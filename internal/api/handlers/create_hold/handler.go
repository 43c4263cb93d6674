package create_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	createHold "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUnknownSport       = "вид спорта не найден в каталоге"
	msgUnknownCourt       = "корт не найден для выбранного вида спорта"
	msgWindowViolation    = "дата вне допустимого окна бронирования"
	msgSlotUnavailable    = "выбранный интервал недоступен"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(username)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: user=%s, error=%v", username, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrUnknownSport):
			h.logger.Warn("POST /bookings - Unknown sport: user=%s, sport=%s", username, req.Sport)
			handlers.RespondNotFound(w, msgUnknownSport)

		case errors.Is(err, createHold.ErrUnknownCourt):
			h.logger.Warn("POST /bookings - Unknown court: user=%s, sport=%s, court=%s",
				username, req.Sport, req.CourtID)
			handlers.RespondNotFound(w, msgUnknownCourt)

		case errors.Is(err, createHold.ErrWindowViolation):
			h.logger.Warn("POST /bookings - Date outside booking window: user=%s, date=%s", username, req.Date)
			handlers.RespondBadRequest(w, msgWindowViolation)

		case errors.Is(err, createHold.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: user=%s, court=%s, date=%s, start=%s",
				username, req.CourtID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, error=%v", username, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create hold: user=%s, court=%s, error=%v",
				username, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Hold created successfully: booking_id=%s, user=%s, court=%s",
		result.ID, username, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
