package submit_booking

import (
	"context"

	"github.com/brightdental/booking-web/internal/booking"
)

type BookingFlow interface {
	Submit(ctx context.Context, sessionID string, form booking.ContactForm) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
