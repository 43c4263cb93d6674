package confirm_payment

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт пользователя не найден
	ErrAccountNotFound = errors.New("confirm_payment: account not found")

	// ErrBookingNotFound возвращается, когда PENDING-бронирование с таким id
	// у пользователя отсутствует
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrHoldExpired возвращается, когда hold истек
	// Бронирование при этом удаляется как побочный эффект
	ErrHoldExpired = errors.New("confirm_payment: booking hold has expired")

	// ErrInsufficientFunds возвращается при недостатке средств
	// Бронирование остается PENDING, пользователь может повторить позже
	ErrInsufficientFunds = errors.New("confirm_payment: insufficient funds")

	// ErrPaymentFailed возвращается, когда списание не удалось после
	// успешной проверки баланса; бронирование остается PENDING
	ErrPaymentFailed = errors.New("confirm_payment: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
