package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// UseCase use case получения сетки доступности:
// для каждого корта вида спорта все 48 получасовых слотов даты
// с признаком доступности по живым бронированиям
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

// Execute выполняет use case получения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: sport=%s, date=%s", req.Sport, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Sport == "" {
		return nil, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем вид спорта по каталогу
	sport, err := uc.catalog.GetSport(req.Sport)
	if err != nil {
		uc.logger.Warn("GetAvailability: sport %q not found", req.Sport)
		return nil, ErrUnknownSport
	}

	// 3. Запрашиваем сетку у реестра
	courtIDs := sport.CourtIDs()
	grid := uc.ledger.AvailabilityGrid(courtIDs, req.Date)

	// 4. Собираем ответ в порядке каталога
	courts := make([]CourtAvailability, 0, len(courtIDs))
	for _, courtID := range courtIDs {
		gridSlots := grid[courtID]
		slots := make([]Slot, len(gridSlots))
		for i, gs := range gridSlots {
			slots[i] = Slot{
				StartTime: types.NewTimeString(gs.Start),
				Available: gs.Available,
			}
		}
		courts = append(courts, CourtAvailability{CourtID: courtID, Slots: slots})
	}

	uc.logger.Info("GetAvailability: returned grid for %d courts, sport=%s", len(courts), req.Sport)

	return &Response{
		Sport:  req.Sport,
		Date:   req.Date,
		Courts: courts,
	}, nil
}
