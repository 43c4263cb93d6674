package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate  = "отсутствует параметр date"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownSport = "вид спорта не найден в каталоге"
	msgInvalidData  = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sports/{sport}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sport := vars["sport"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sports/{sport}/availability - Missing date parameter: sport=%s", sport)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sports/{sport}/availability - Invalid date: sport=%s, date=%s", sport, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Sport: sport,
		Date:  date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrUnknownSport):
			h.logger.Warn("GET /sports/{sport}/availability - Unknown sport: sport=%s", sport)
			handlers.RespondNotFound(w, msgUnknownSport)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /sports/{sport}/availability - Invalid input: sport=%s, error=%v", sport, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /sports/{sport}/availability - Failed to get availability: sport=%s, error=%v",
				sport, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sports/{sport}/availability - Availability retrieved: sport=%s, date=%s, courts=%d",
		sport, dateStr, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
