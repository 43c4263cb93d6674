package pricing

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// CatalogStore интерфейс справочника видов спорта
type CatalogStore interface {
	GetSport(name string) (*domain.Sport, error)
}
