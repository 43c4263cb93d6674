package catalog

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Store справочник видов спорта, тарифов и кортов
// Только для чтения после загрузки, поэтому блокировки не нужны
type Store struct {
	sports map[string]*domain.Sport
	order  []string // имена видов спорта в порядке конфигурации
}

// NewFromConfig создает справочник из секции catalog конфигурации
func NewFromConfig(cfg config.CatalogConfig) *Store {
	sports := make(map[string]*domain.Sport, len(cfg.Sports))
	order := make([]string, 0, len(cfg.Sports))

	for _, sc := range cfg.Sports {
		courts := make([]domain.Court, len(sc.Courts))
		for i, courtID := range sc.Courts {
			courts[i] = domain.Court{ID: courtID, Sport: sc.Name}
		}
		sports[sc.Name] = &domain.Sport{
			Name:          sc.Name,
			HourlyRateUSD: sc.HourlyRateUSD,
			Courts:        courts,
		}
		order = append(order, sc.Name)
	}

	return &Store{sports: sports, order: order}
}

// GetSport возвращает вид спорта по имени
func (s *Store) GetSport(name string) (*domain.Sport, error) {
	sport, ok := s.sports[name]
	if !ok {
		return nil, ErrSportNotFound
	}
	return sport, nil
}

// SportNames возвращает имена всех видов спорта в порядке конфигурации
func (s *Store) SportNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Courts возвращает идентификаторы кортов вида спорта в порядке каталога
// Для неизвестного вида спорта возвращает пустой список
func (s *Store) Courts(sportName string) []string {
	sport, ok := s.sports[sportName]
	if !ok {
		return []string{}
	}
	return sport.CourtIDs()
}

// HourlyRate возвращает часовой тариф вида спорта
// Для неизвестного вида спорта возвращает 0
func (s *Store) HourlyRate(sportName string) float64 {
	sport, ok := s.sports[sportName]
	if !ok {
		return 0
	}
	return sport.HourlyRateUSD
}
