package create_hold

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createHold "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_hold"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	Sport         string `json:"sport"`
	CourtID       string `json:"courtId"`
	Date          string `json:"date"`      // "2026-09-01"
	StartTime     string `json:"startTime"` // "10:00"
	DurationSlots int    `json:"durationSlots"`
}

// HoldResponse HTTP response model
type HoldResponse struct {
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
	CreatedAt     string  `json:"createdAt"`
	HoldExpiresAt string  `json:"holdExpiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateHoldRequest) ToUseCaseRequest(username string) (*createHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createHold.Request{
		Username:      username,
		Sport:         r.Sport,
		CourtID:       r.CourtID,
		Date:          date,
		StartTime:     startTime,
		DurationSlots: r.DurationSlots,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createHold.Response) *HoldResponse {
	return &HoldResponse{
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
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		HoldExpiresAt: resp.HoldExpiresAt.Format(time.RFC3339),
	}
}
