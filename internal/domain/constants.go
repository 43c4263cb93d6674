package domain

// Slot granularity constants
const (
	// SlotMinutes длительность одного слота в минутах (фиксирована)
	SlotMinutes = 30
	// SlotsPerDay количество слотов в сутках
	SlotsPerDay = 48
	// MinDurationSlots минимальная длительность бронирования в слотах
	MinDurationSlots = 1
	// MaxDurationSlots максимальная длительность бронирования в слотах (сутки)
	MaxDurationSlots = SlotsPerDay
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
	// IDDateFormat формат даты в идентификаторе бронирования (BK-YYYYMMDD-NNNN)
	IDDateFormat = "20060102"
)
