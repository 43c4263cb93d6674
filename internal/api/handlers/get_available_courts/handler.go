package get_available_courts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailableCourts "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_courts"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

const (
	msgMissingParams = "отсутствуют обязательные параметры date, startTime, durationSlots"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime   = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidSlots  = "некорректное значение durationSlots"
	msgUnknownSport  = "вид спорта не найден в каталоге"
	msgInvalidData   = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailableCourtsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableCourtsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sports/{sport}/available-courts?date=YYYY-MM-DD&startTime=HH:MM&durationSlots=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sport := vars["sport"]

	query := r.URL.Query()
	dateStr := query.Get("date")
	startTimeStr := query.Get("startTime")
	durationStr := query.Get("durationSlots")
	if dateStr == "" || startTimeStr == "" || durationStr == "" {
		h.logger.Warn("GET /sports/{sport}/available-courts - Missing parameters: sport=%s", sport)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sports/{sport}/available-courts - Invalid date: sport=%s, date=%s", sport, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		h.logger.Warn("GET /sports/{sport}/available-courts - Invalid start time: sport=%s, startTime=%s",
			sport, startTimeStr)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	durationSlots, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /sports/{sport}/available-courts - Invalid duration: sport=%s, durationSlots=%s",
			sport, durationStr)
		handlers.RespondBadRequest(w, msgInvalidSlots)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableCourts.Request{
		Sport:         sport,
		Date:          date,
		StartTime:     startTime,
		DurationSlots: durationSlots,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableCourts.ErrUnknownSport):
			h.logger.Warn("GET /sports/{sport}/available-courts - Unknown sport: sport=%s", sport)
			handlers.RespondNotFound(w, msgUnknownSport)

		case errors.Is(err, getAvailableCourts.ErrInvalidInput):
			h.logger.Warn("GET /sports/{sport}/available-courts - Invalid input: sport=%s, error=%v", sport, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /sports/{sport}/available-courts - Failed to get courts: sport=%s, error=%v",
				sport, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sports/{sport}/available-courts - Courts retrieved: sport=%s, date=%s, free=%d",
		sport, dateStr, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
