package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	accountsRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/accounts"
	ledgerStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/ledger"
)

// UseCase use case подтверждения оплаты: атомарный перевод
// PENDING-бронирования в PAID со списанием с предоплаченного баланса
type UseCase struct {
	ledger       Ledger
	accountStore AccountStore
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger Ledger,
	accountStore AccountStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:       ledger,
		accountStore: accountStore,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения оплаты
// Списание и смена статуса выполняются реестром как один неделимый шаг:
// при любой ошибке бронирование и баланс остаются без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: user=%s, booking=%s", req.Username, req.BookingID)

	// 1. Валидация входных данных
	if req.Username == "" || req.BookingID == "" {
		uc.logger.Warn("ConfirmPayment: username and bookingId are required")
		return nil, fmt.Errorf("%w: username and bookingId are required", ErrInvalidInput)
	}

	// 2. Проверяем существование аккаунта
	if _, err := uc.accountStore.Get(req.Username); err != nil {
		if errors.Is(err, accountsRepo.ErrAccountNotFound) {
			uc.logger.Warn("ConfirmPayment: account %q not found", req.Username)
			return nil, ErrAccountNotFound
		}
		uc.logger.Error("ConfirmPayment: account store error for %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: account store error: %v", ErrInternal, err)
	}

	// 3. Подтверждаем оплату через реестр
	// Баланс остается во владении хранилища аккаунтов - реестр только
	// вызывает переданные колбэки проверки и списания
	booking, err := uc.ledger.ConfirmPayment(
		req.Username,
		req.BookingID,
		func(amountUSD float64) bool { return uc.accountStore.CanAfford(req.Username, amountUSD) },
		func(amountUSD float64) bool { return uc.accountStore.Debit(req.Username, amountUSD) },
	)
	if err != nil {
		switch {
		case errors.Is(err, ledgerStore.ErrBookingNotFound):
			uc.logger.Warn("ConfirmPayment: booking id=%s not found for user=%s", req.BookingID, req.Username)
			return nil, ErrBookingNotFound

		case errors.Is(err, ledgerStore.ErrHoldExpired):
			uc.logger.Warn("ConfirmPayment: hold expired for booking id=%s, user=%s", req.BookingID, req.Username)
			return nil, ErrHoldExpired

		case errors.Is(err, ledgerStore.ErrInsufficientFunds):
			uc.logger.Warn("ConfirmPayment: insufficient funds for booking id=%s, user=%s", req.BookingID, req.Username)
			return nil, ErrInsufficientFunds

		case errors.Is(err, ledgerStore.ErrPaymentFailed):
			uc.logger.Warn("ConfirmPayment: debit failed for booking id=%s, user=%s", req.BookingID, req.Username)
			return nil, ErrPaymentFailed

		default:
			uc.logger.Error("ConfirmPayment: ledger error for booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
		}
	}

	// 4. Получаем баланс после списания
	account, err := uc.accountStore.Get(req.Username)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to reload account %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to reload account: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmPayment: booking id=%s paid, amount=%.2f, balance=%.2f",
		booking.ID, booking.PriceUSD, account.BalanceUSD)

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
		BalanceUSD:    account.BalanceUSD,
	}, nil
}
