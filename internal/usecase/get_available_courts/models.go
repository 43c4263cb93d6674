package get_available_courts

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса кортов, свободных на интервале
type Request struct {
	Sport         string           // Вид спорта из каталога
	Date          time.Time        // Дата (без времени)
	StartTime     types.TimeString // Время начала интервала
	DurationSlots int              // Длительность в 30-минутных слотах
}

// Response модель ответа со свободными кортами
type Response struct {
	Sport         string           // Вид спорта
	Date          time.Time        // Дата
	StartTime     types.TimeString // Время начала интервала
	DurationSlots int              // Длительность в слотах
	Courts        []string         // Свободные корты в порядке каталога
}
