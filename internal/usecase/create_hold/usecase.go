package create_hold

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	ledgerStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/ledger"
)

// UseCase use case для создания hold - PENDING-бронирования,
// удерживающего интервал корта до оплаты или истечения таймаута
type UseCase struct {
	catalog      CatalogStore
	pricing      PricingService
	ledger       Ledger
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogStore,
	pricing PricingService,
	ledger Ledger,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		pricing:      pricing,
		ledger:       ledger,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания hold
// Доступность корта повторно проверяется реестром под блокировкой,
// поэтому гонка между запросом доступности и коммитом исключена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: user=%s, sport=%s, court=%s, date=%s, time=%s, slots=%d",
		req.Username, req.Sport, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationSlots)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем вид спорта и корт по каталогу
	sport, err := uc.catalog.GetSport(req.Sport)
	if err != nil {
		uc.logger.Warn("CreateHold: sport %q not found", req.Sport)
		return nil, ErrUnknownSport
	}

	if !sport.HasCourt(req.CourtID) {
		uc.logger.Warn("CreateHold: court %q does not belong to sport %q", req.CourtID, req.Sport)
		return nil, ErrUnknownCourt
	}

	// 4. Проверяем окно бронирования
	if err := validateWindow(req.Date, now, uc.windowDays); err != nil {
		uc.logger.Warn("CreateHold: window validation failed: %v", err)
		return nil, err
	}

	// 5. Совмещаем дату и время начала
	start, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to combine date and time: %v", ErrInvalidInput, err)
	}

	// 6. Вычисляем стоимость (один раз, далее неизменна)
	price := uc.pricing.CalculatePrice(req.Sport, req.DurationSlots)

	// 7. Создаем hold; реестр атомарно перепроверяет доступность,
	// генерирует идентификатор и вставляет запись в оба индекса
	booking, err := uc.ledger.CreateHold(req.Username, req.Sport, req.CourtID, start, req.DurationSlots, price)
	if err != nil {
		if errors.Is(err, ledgerStore.ErrSlotUnavailable) {
			uc.logger.Warn("CreateHold: slot not available: court=%s, start=%s", req.CourtID, start)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("CreateHold: ledger error: %v", err)
		return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateHold: successfully created hold id=%s, price=%.2f, expires_at=%s",
		booking.ID, booking.PriceUSD, booking.HoldExpiresAt)

	return &Response{
		ID:            booking.ID,
		Username:      booking.Username,
		Sport:         booking.Sport,
		CourtID:       booking.CourtID,
		Start:         booking.Start,
		End:           booking.EndTime(),
		DurationSlots: booking.DurationSlots,
		PriceUSD:      booking.PriceUSD,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
		HoldExpiresAt: *booking.HoldExpiresAt,
	}, nil
}
