package catalog

import "errors"

var (
	// ErrSportNotFound возвращается, когда вид спорта отсутствует в справочнике
	ErrSportNotFound = errors.New("catalog: sport not found")
)
