package get_availability

import "errors"

var (
	// ErrUnknownSport возвращается, когда вид спорта отсутствует в каталоге
	ErrUnknownSport = errors.New("get_availability: unknown sport")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
