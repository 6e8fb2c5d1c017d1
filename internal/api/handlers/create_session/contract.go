package create_session

import (
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/i18n"
)

type BookingFlow interface {
	StartSession(locale i18n.Locale) *booking.View
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
