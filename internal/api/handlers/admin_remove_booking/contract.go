package admin_remove_booking

import "context"

type BookingService interface {
	AdminRemove(ctx context.Context, requestingUsername, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
