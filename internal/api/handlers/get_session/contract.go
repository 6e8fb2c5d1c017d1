package get_session

import (
	"github.com/brightdental/booking-web/internal/booking"
)

type BookingFlow interface {
	GetView(sessionID string) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
