package cancel_booking

import "context"

type BookingService interface {
	Cancel(ctx context.Context, username, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
