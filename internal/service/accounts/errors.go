package accounts

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts service: internal error")
)
