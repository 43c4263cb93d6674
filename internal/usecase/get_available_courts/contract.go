package get_available_courts

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CatalogStore интерфейс справочника видов спорта
type CatalogStore interface {
	GetSport(name string) (*domain.Sport, error)
}

// Ledger интерфейс реестра бронирований
type Ledger interface {
	AvailableCourts(courtIDs []string, start time.Time, durationSlots int) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
