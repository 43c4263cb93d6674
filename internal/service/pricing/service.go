package pricing

import (
	"math"
)

// Service сервис расчета стоимости бронирования
// Чистые детерминированные вычисления, состояния нет
type Service struct {
	catalog CatalogStore
}

// NewService создает новый экземпляр сервиса расчета стоимости
func NewService(catalog CatalogStore) *Service {
	return &Service{catalog: catalog}
}

// HourlyRate возвращает часовой тариф вида спорта
// Для неизвестного вида спорта возвращает 0 (пермиссивный дефолт)
func (s *Service) HourlyRate(sportName string) float64 {
	sport, err := s.catalog.GetSport(sportName)
	if err != nil {
		return 0
	}
	return sport.HourlyRateUSD
}

// CalculatePrice вычисляет стоимость бронирования:
// round(тариф * количество слотов * 0.5, 2), слот - полчаса
func (s *Service) CalculatePrice(sportName string, durationSlots int) float64 {
	rate := s.HourlyRate(sportName)
	hours := 0.5 * float64(durationSlots)
	return math.Round(rate*hours*100) / 100
}
