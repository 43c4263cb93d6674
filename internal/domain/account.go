package domain

// Role represents the capability set of an account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account represents a user account with a prepaid balance
// Баланс принадлежит стороне вызывающего: реестр бронирований денег не хранит
type Account struct {
	Username   string
	Role       Role
	BalanceUSD float64
}

// IsAdmin проверяет, что аккаунт имеет административные права
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAfford проверяет, что баланса хватает на сумму amount
func (a *Account) CanAfford(amount float64) bool {
	return a.BalanceUSD >= amount
}
