package select_time

import (
	"github.com/brightdental/booking-web/internal/booking"
)

type BookingFlow interface {
	SelectTime(sessionID, label string) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
