package get_account

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/accounts/models"
)

type AccountService interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
