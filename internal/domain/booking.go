package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending бронирование удерживает слот до оплаты или истечения hold
	StatusPending BookingStatus = "PENDING"
	// StatusPaid бронирование оплачено и неизменяемо до административного удаления
	StatusPaid BookingStatus = "PAID"
)

// Booking represents a court booking in the system
// Все поля кроме Status и HoldExpiresAt неизменяемы после создания
type Booking struct {
	ID            string // Формат BK-YYYYMMDD-NNNN
	Username      string
	Sport         string
	CourtID       string
	Start         time.Time // Выровнено по 30-минутной границе
	DurationSlots int       // Количество 30-минутных слотов
	PriceUSD      float64   // Вычисляется один раз при создании
	Status        BookingStatus
	CreatedAt     time.Time
	HoldExpiresAt *time.Time // Присутствует тогда и только тогда, когда Status = PENDING
}

// EndTime возвращает время окончания бронирования
func (b *Booking) EndTime() time.Time {
	return b.Start.Add(time.Duration(b.DurationSlots*SlotMinutes) * time.Minute)
}

// IsExpired проверяет, истек ли hold на момент now
// Оплаченные бронирования не истекают
func (b *Booking) IsExpired(now time.Time) bool {
	if b.Status != StatusPending || b.HoldExpiresAt == nil {
		return false
	}
	return !now.Before(*b.HoldExpiresAt)
}

// IsLive проверяет, удерживает ли бронирование свой интервал на момент now
// Live = PENDING с неистекшим hold или PAID
func (b *Booking) IsLive(now time.Time) bool {
	if b.Status == StatusPaid {
		return true
	}
	return !b.IsExpired(now)
}

// Overlaps проверяет пересечение с интервалом [start, end)
// Граничащие интервалы пересечением не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.EndTime().After(start)
}

// ConfirmPayment переводит бронирование в статус PAID и снимает hold
func (b *Booking) ConfirmPayment() {
	b.Status = StatusPaid
	b.HoldExpiresAt = nil
}
