package get_available_courts

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailableCourts "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_courts"
)

// AvailableCourtsResponse HTTP response model: корты, свободные на интервале
type AvailableCourtsResponse struct {
	Sport         string   `json:"sport"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	DurationSlots int      `json:"durationSlots"`
	Courts        []string `json:"courts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableCourts.Response) *AvailableCourtsResponse {
	return &AvailableCourtsResponse{
		Sport:         resp.Sport,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationSlots: resp.DurationSlots,
		Courts:        resp.Courts,
	}
}
