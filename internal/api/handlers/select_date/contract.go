package select_date

import (
	"context"
	"time"

	"github.com/brightdental/booking-web/internal/booking"
)

type BookingFlow interface {
	SelectDate(ctx context.Context, sessionID string, date time.Time) (*booking.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
