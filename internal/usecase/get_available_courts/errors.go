package get_available_courts

import "errors"

var (
	// ErrUnknownSport возвращается, когда вид спорта отсутствует в каталоге
	ErrUnknownSport = errors.New("get_available_courts: unknown sport")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_courts: invalid input data")
)
