package accounts

import (
	"context"
	"errors"

	accountsRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/accounts"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/accounts/models"
)

// Service сервис для работы с аккаунтами
type Service struct {
	accountStore AccountStore
	logger       Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(accountStore AccountStore, logger Logger) *Service {
	return &Service{
		accountStore: accountStore,
		logger:       logger,
	}
}

// GetByUsername возвращает аккаунт по имени пользователя
func (s *Service) GetByUsername(ctx context.Context, username string) (*models.AccountResponse, error) {
	acc, err := s.accountStore.Get(username)
	if err != nil {
		if errors.Is(err, accountsRepo.ErrAccountNotFound) {
			s.logger.Warn("GetByUsername: account %q not found", username)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("GetByUsername: store error for %q: %v", username, err)
		return nil, ErrInternal
	}

	return models.FromDomainAccount(acc), nil
}
