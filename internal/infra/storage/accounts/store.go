package accounts

import (
	"math"
	"sync"

	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Store хранилище аккаунтов с предоплаченными балансами
// Балансы принадлежат этому хранилищу, а не реестру бронирований:
// реестр только вызывает CanAfford/Debit через колбэки
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewFromConfig создает хранилище аккаунтов из секции accounts конфигурации
func NewFromConfig(cfg config.AccountsConfig) *Store {
	accounts := make(map[string]*domain.Account, len(cfg.Users)+len(cfg.Admins))

	for _, u := range cfg.Users {
		accounts[u.Username] = &domain.Account{
			Username:   u.Username,
			Role:       domain.RoleUser,
			BalanceUSD: u.BalanceUSD,
		}
	}
	for _, a := range cfg.Admins {
		accounts[a.Username] = &domain.Account{
			Username:   a.Username,
			Role:       domain.RoleAdmin,
			BalanceUSD: a.BalanceUSD,
		}
	}

	return &Store{accounts: accounts}
}

// Get возвращает копию аккаунта по имени пользователя
func (s *Store) Get(username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}

	accCopy := *acc
	return &accCopy, nil
}

// CanAfford проверяет, что баланс аккаунта покрывает сумму amountUSD
// Для неизвестного аккаунта возвращает false
func (s *Store) CanAfford(username string, amountUSD float64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[username]
	return ok && acc.CanAfford(amountUSD)
}

// Debit атомарно списывает amountUSD с баланса аккаунта
// Возвращает false, если аккаунт не найден или средств недостаточно;
// баланс в этом случае не меняется
func (s *Store) Debit(username string, amountUSD float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok || !acc.CanAfford(amountUSD) {
		return false
	}

	acc.BalanceUSD = math.Round((acc.BalanceUSD-amountUSD)*100) / 100
	return true
}
