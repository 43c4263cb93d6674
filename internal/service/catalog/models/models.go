package models

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// SportResponse один вид спорта в ответе каталога
type SportResponse struct {
	Name          string   `json:"name"`
	HourlyRateUSD float64  `json:"hourlyRateUsd"`
	Courts        []string `json:"courts"`
}

// CatalogResponse ответ со всем каталогом
type CatalogResponse struct {
	Sports []SportResponse `json:"sports"`
}

// FromDomainSport конвертирует domain модель в DTO
func FromDomainSport(s *domain.Sport) SportResponse {
	return SportResponse{
		Name:          s.Name,
		HourlyRateUSD: s.HourlyRateUSD,
		Courts:        s.CourtIDs(),
	}
}
