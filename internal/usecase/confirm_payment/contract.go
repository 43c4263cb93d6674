package confirm_payment

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Ledger интерфейс реестра бронирований
// Колбэки проверки и списания баланса предоставляет вызывающий:
// реестр денег не хранит
type Ledger interface {
	ConfirmPayment(username, bookingID string, balanceCheck func(amountUSD float64) bool, balanceDebit func(amountUSD float64) bool) (*domain.Booking, error)
}

// AccountStore интерфейс хранилища аккаунтов
type AccountStore interface {
	Get(username string) (*domain.Account, error)
	CanAfford(username string, amountUSD float64) bool
	Debit(username string, amountUSD float64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
