package create_hold

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CatalogStore интерфейс справочника видов спорта
type CatalogStore interface {
	GetSport(name string) (*domain.Sport, error)
}

// PricingService интерфейс сервиса расчета стоимости
type PricingService interface {
	CalculatePrice(sportName string, durationSlots int) float64
}

// Ledger интерфейс реестра бронирований
type Ledger interface {
	CreateHold(username, sport, courtID string, start time.Time, durationSlots int, priceUSD float64) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
