package message_patient

import (
	"context"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
)

type BackendClient interface {
	GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error)
}

type Dashboard interface {
	MessageLink(locale i18n.Locale, appt *domain.Appointment) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
