package create_hold

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	if req.Sport == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Начало должно быть выровнено по 30-минутной границе
	minutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if minutes%domain.SlotMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute boundary", ErrInvalidInput, domain.SlotMinutes)
	}

	if req.DurationSlots < domain.MinDurationSlots || req.DurationSlots > domain.MaxDurationSlots {
		return fmt.Errorf("%w: durationSlots must be between %d and %d",
			ErrInvalidInput, domain.MinDurationSlots, domain.MaxDurationSlots)
	}

	return nil
}

// validateWindow проверяет, что дата лежит в окне бронирования
// [сегодня, сегодня + windowDays], обе границы включительно
// Сравниваются календарные даты: обе стороны нормализуются к полуночи UTC,
// чтобы часовой пояс сервера не сдвигал границы окна
func validateWindow(bookingDate time.Time, now time.Time, windowDays int) error {
	dy, dm, dd := bookingDate.Date()
	dateOnly := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	maxDate := today.AddDate(0, 0, windowDays)

	if dateOnly.Before(today) || dateOnly.After(maxDate) {
		return fmt.Errorf("%w: date must be within 0-%d days from today", ErrWindowViolation, windowDays)
	}

	return nil
}
