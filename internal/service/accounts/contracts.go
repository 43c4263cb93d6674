package accounts

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

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
