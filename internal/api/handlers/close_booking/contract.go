package close_booking

import "context"

type BookingFlows interface {
	Close(ctx context.Context, flowID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
