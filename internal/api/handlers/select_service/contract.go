package select_service

import (
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/domain"
)

type BookingFlow interface {
	SelectService(sessionID string, service domain.ServiceID) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
