package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	ledgerStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/ledger"
)

// CatalogStore интерфейс справочника видов спорта
type CatalogStore interface {
	GetSport(name string) (*domain.Sport, error)
}

// Ledger интерфейс реестра бронирований
type Ledger interface {
	AvailabilityGrid(courtIDs []string, date time.Time) map[string][]ledgerStore.GridSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
