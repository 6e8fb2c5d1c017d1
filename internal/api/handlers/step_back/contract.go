package step_back

import (
	"github.com/brightdental/booking-web/internal/booking"
)

type BookingFlow interface {
	Back(sessionID string) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
