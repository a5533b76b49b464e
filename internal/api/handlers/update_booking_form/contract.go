package update_booking_form

import (
	"context"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

type UpdateFieldUseCase interface {
	UpdateField(ctx context.Context, flowID string, field domain.FormField, value string) (*createBooking.FlowSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
