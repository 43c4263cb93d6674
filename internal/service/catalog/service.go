package catalog

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog/models"
)

// Service сервис каталога видов спорта и кортов
type Service struct {
	catalog CatalogStore
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog CatalogStore, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// ListSports возвращает все виды спорта с тарифами и кортами
func (s *Service) ListSports(ctx context.Context) (*models.CatalogResponse, error) {
	names := s.catalog.SportNames()

	sports := make([]models.SportResponse, 0, len(names))
	for _, name := range names {
		sport, err := s.catalog.GetSport(name)
		if err != nil {
			// Справочник неизменяем после загрузки, рассинхронизация невозможна
			continue
		}
		sports = append(sports, models.FromDomainSport(sport))
	}

	s.logger.Info("ListSports: returned %d sports", len(sports))
	return &models.CatalogResponse{Sports: sports}, nil
}
