package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Sport         string  `json:"sport"`
	CourtID       string  `json:"courtId"`
	Date          string  `json:"date"`      // "2025-06-01"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "11:00"
	DurationSlots int     `json:"durationSlots"`
	DurationHours float64 `json:"durationHours"`
	PriceUSD      float64 `json:"priceUsd"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`               // ISO 8601
	HoldExpiresAt *string `json:"holdExpiresAt,omitempty"` // ISO 8601, только для PENDING
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		Username:      b.Username,
		Sport:         b.Sport,
		CourtID:       b.CourtID,
		Date:          b.Start.Format(domain.DateFormat),
		StartTime:     b.Start.Format(domain.TimeFormat),
		EndTime:       b.EndTime().Format(domain.TimeFormat),
		DurationSlots: b.DurationSlots,
		DurationHours: 0.5 * float64(b.DurationSlots),
		PriceUSD:      b.PriceUSD,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}

	if b.HoldExpiresAt != nil {
		resp.HoldExpiresAt = ptr.Ptr(b.HoldExpiresAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
