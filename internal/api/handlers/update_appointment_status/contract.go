package update_appointment_status

import (
	"context"

	"github.com/brightdental/booking-web/internal/domain"
)

type Dashboard interface {
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
