package ledger

import "errors"

var (
	// ErrSlotUnavailable возвращается, когда интервал корта пересекается с живым бронированием
	ErrSlotUnavailable = errors.New("ledger: slot is not available")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или не принадлежит запрашивающему пользователю
	ErrBookingNotFound = errors.New("ledger: booking not found")

	// ErrHoldExpired возвращается, когда hold бронирования истек
	// Бронирование удаляется как побочный эффект обнаружения
	ErrHoldExpired = errors.New("ledger: booking hold has expired")

	// ErrInsufficientFunds возвращается, когда проверка баланса не прошла
	// Бронирование остается PENDING
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")

	// ErrPaymentFailed возвращается, когда списание не удалось после успешной проверки баланса
	// Бронирование остается PENDING
	ErrPaymentFailed = errors.New("ledger: payment failed")
)
