package create_hold

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на создание hold
type Request struct {
	Username      string           // Имя пользователя (владелец hold)
	Sport         string           // Вид спорта из каталога
	CourtID       string           // Идентификатор корта
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	DurationSlots int              // Длительность в 30-минутных слотах
}

// Response модель ответа с созданным hold
type Response struct {
	ID            string    // Идентификатор бронирования (BK-YYYYMMDD-NNNN)
	Username      string    // Имя пользователя
	Sport         string    // Вид спорта
	CourtID       string    // Идентификатор корта
	Start         time.Time // Время начала
	End           time.Time // Время окончания
	DurationSlots int       // Длительность в слотах
	PriceUSD      float64   // Стоимость (вычислена при создании, далее неизменна)
	Status        string    // Статус бронирования (PENDING)
	CreatedAt     time.Time // Время создания
	HoldExpiresAt time.Time // Дедлайн hold
}
