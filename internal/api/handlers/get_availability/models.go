package get_availability

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model: сетка доступности на дату
type AvailabilityResponse struct {
	Sport  string                      `json:"sport"`
	Date   string                      `json:"date"`
	Courts []CourtAvailabilityResponse `json:"courts"`
}

// CourtAvailabilityResponse сетка одного корта
type CourtAvailabilityResponse struct {
	CourtID string         `json:"courtId"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse один получасовой слот
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	courts := make([]CourtAvailabilityResponse, 0, len(resp.Courts))
	for _, court := range resp.Courts {
		slots := make([]SlotResponse, 0, len(court.Slots))
		for _, slot := range court.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.String(),
				Available: slot.Available,
			})
		}
		courts = append(courts, CourtAvailabilityResponse{
			CourtID: court.CourtID,
			Slots:   slots,
		})
	}

	return &AvailabilityResponse{
		Sport:  resp.Sport,
		Date:   resp.Date.Format(domain.DateFormat),
		Courts: courts,
	}
}
