package confirm_payment

import "time"

// Request модель запроса на подтверждение оплаты
type Request struct {
	Username  string // Имя пользователя (владелец бронирования)
	BookingID string // Идентификатор бронирования
}

// Response модель ответа с оплаченным бронированием
type Response struct {
	ID            string    // Идентификатор бронирования
	Username      string    // Имя пользователя
	Sport         string    // Вид спорта
	CourtID       string    // Идентификатор корта
	Start         time.Time // Время начала
	End           time.Time // Время окончания
	DurationSlots int       // Длительность в слотах
	PriceUSD      float64   // Списанная сумма
	Status        string    // Статус бронирования (PAID)
	BalanceUSD    float64   // Баланс пользователя после списания
}
