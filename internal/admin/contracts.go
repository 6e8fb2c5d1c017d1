package admin

import (
	"context"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
)

// BackendClient интерфейс клиента бэкенда клиники, нужный дашборду
type BackendClient interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req clinicapi.UpdateAppointmentRequest) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	VerifyAdmin(ctx context.Context) error
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	PatientGreetingLink(locale i18n.Locale, phone, patientName string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
