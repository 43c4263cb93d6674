package models

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// AccountResponse ответ с данными аккаунта
type AccountResponse struct {
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	BalanceUSD float64 `json:"balanceUsd"`
}

// FromDomainAccount конвертирует domain модель в DTO
func FromDomainAccount(a *domain.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		Username:   a.Username,
		Role:       string(a.Role),
		BalanceUSD: a.BalanceUSD,
	}
}
