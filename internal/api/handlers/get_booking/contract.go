package get_booking

import (
	"context"

	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

type BookingFlows interface {
	Get(ctx context.Context, flowID string) (*createBooking.FlowSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
