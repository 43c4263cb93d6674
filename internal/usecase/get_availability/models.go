package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса сетки доступности
type Request struct {
	Sport string    // Вид спорта из каталога
	Date  time.Time // Дата (без времени)
}

// Response модель ответа с сеткой доступности
type Response struct {
	Sport  string              // Вид спорта
	Date   time.Time           // Дата
	Courts []CourtAvailability // Корты в порядке каталога
}

// CourtAvailability сетка одного корта: все 48 получасовых слотов дня
type CourtAvailability struct {
	CourtID string
	Slots   []Slot
}

// Slot один получасовой слот
type Slot struct {
	StartTime types.TimeString // Время начала слота ("00:00".."23:30")
	Available bool             // Свободен ли слот
}
