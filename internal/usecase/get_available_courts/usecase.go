package get_available_courts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// UseCase use case поиска кортов, свободных на всем запрошенном интервале
type UseCase struct {
	catalog CatalogStore
	ledger  Ledger
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogStore, ledger Ledger, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// Execute выполняет use case поиска свободных кортов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableCourts: sport=%s, date=%s, time=%s, slots=%d",
		req.Sport, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationSlots)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableCourts: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем вид спорта по каталогу
	sport, err := uc.catalog.GetSport(req.Sport)
	if err != nil {
		uc.logger.Warn("GetAvailableCourts: sport %q not found", req.Sport)
		return nil, ErrUnknownSport
	}

	// 3. Совмещаем дату и время начала
	start, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to combine date and time: %v", ErrInvalidInput, err)
	}

	// 4. Запрашиваем свободные корты у реестра (порядок каталога сохраняется)
	courts := uc.ledger.AvailableCourts(sport.CourtIDs(), start, req.DurationSlots)

	uc.logger.Info("GetAvailableCourts: %d of %d courts available, sport=%s",
		len(courts), len(sport.Courts), req.Sport)

	return &Response{
		Sport:         req.Sport,
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationSlots: req.DurationSlots,
		Courts:        courts,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Sport == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	minutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if minutes%domain.SlotMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute boundary", ErrInvalidInput, domain.SlotMinutes)
	}

	if req.DurationSlots < domain.MinDurationSlots || req.DurationSlots > domain.MaxDurationSlots {
		return fmt.Errorf("%w: durationSlots must be between %d and %d",
			ErrInvalidInput, domain.MinDurationSlots, domain.MaxDurationSlots)
	}

	return nil
}
