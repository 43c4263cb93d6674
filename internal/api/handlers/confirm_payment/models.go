package confirm_payment

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

// PaymentResponse HTTP response model: оплаченное бронирование
type PaymentResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Sport         string  `json:"sport"`
	CourtID       string  `json:"courtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationSlots int     `json:"durationSlots"`
	PriceUSD      float64 `json:"priceUsd"`
	Status        string  `json:"status"`
	BalanceUSD    float64 `json:"balanceUsd"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		ID:            resp.ID,
		Username:      resp.Username,
		Sport:         resp.Sport,
		CourtID:       resp.CourtID,
		Date:          resp.Start.Format(domain.DateFormat),
		StartTime:     resp.Start.Format(domain.TimeFormat),
		EndTime:       resp.End.Format(domain.TimeFormat),
		DurationSlots: resp.DurationSlots,
		PriceUSD:      resp.PriceUSD,
		Status:        resp.Status,
		BalanceUSD:    resp.BalanceUSD,
	}
}
