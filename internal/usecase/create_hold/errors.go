package create_hold

import "errors"

var (
	// ErrUnknownSport возвращается, когда вид спорта отсутствует в каталоге
	ErrUnknownSport = errors.New("create_hold: unknown sport")

	// ErrUnknownCourt возвращается, когда корт не принадлежит указанному виду спорта
	ErrUnknownCourt = errors.New("create_hold: unknown court")

	// ErrWindowViolation возвращается, когда дата вне окна бронирования
	// [сегодня, сегодня + booking_window_days]
	ErrWindowViolation = errors.New("create_hold: date outside booking window")

	// ErrSlotUnavailable возвращается, когда интервал корта пересекается
	// с живым бронированием на момент коммита
	ErrSlotUnavailable = errors.New("create_hold: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
