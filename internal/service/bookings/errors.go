package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено,
	// не принадлежит пользователю или уже не находится в статусе PENDING
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
