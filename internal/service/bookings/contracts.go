package bookings

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Ledger интерфейс реестра бронирований
type Ledger interface {
	UserBookings(username string) []*domain.Booking
	AllBookings() []*domain.Booking
	CancelPending(username, bookingID string) bool
	AdminRemove(bookingID string) bool
}

// AccountStore интерфейс хранилища аккаунтов
type AccountStore interface {
	Get(username string) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
