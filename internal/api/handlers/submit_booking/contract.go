package submit_booking

import (
	"context"

	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

type SubmitBookingUseCase interface {
	Submit(ctx context.Context, flowID string, req *createBooking.Request) (*createBooking.Response, error)
	SubmitCurrent(ctx context.Context, flowID string) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
