package booking

import (
	"context"
	"time"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
	"github.com/brightdental/booking-web/internal/notify"
)

// BackendClient интерфейс клиента бэкенда клиники, нужный мастеру
type BackendClient interface {
	CreatePatient(ctx context.Context, req clinicapi.CreatePatientRequest) (*clinicapi.CreatePatientResponse, error)
	CreateAppointment(ctx context.Context, req clinicapi.CreateAppointmentRequest) (*domain.Appointment, error)
	BookedSlots(ctx context.Context, date string) ([]string, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	NewBookingLink(locale i18n.Locale, details notify.BookingDetails) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
