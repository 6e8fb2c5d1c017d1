package admin

import (
	"context"
	"fmt"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
	"github.com/brightdental/booking-web/pkg/ptr"
)

// Service сервис админ-дашборда: список записей, смена статуса, удаление,
// сообщение пациенту
type Service struct {
	client       BackendClient
	notifier     Notifier
	averagePrice float64
	log          Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(client BackendClient, notifier Notifier, averagePrice float64, log Logger) *Service {
	return &Service{
		client:       client,
		notifier:     notifier,
		averagePrice: averagePrice,
		log:          log,
	}
}

// List загружает все записи и фильтрует их по статусу на своей стороне.
// Серверный маршрут /appointments/status/{status} намеренно не используется:
// сводка всегда считается по полному списку.
func (s *Service) List(ctx context.Context, filter StatusFilter) (*ListResult, error) {
	appointments, err := s.client.ListAppointments(ctx)
	if err != nil {
		s.log.Error("admin: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	stats := computeStats(appointments, s.averagePrice)

	filtered := appointments
	if filter != FilterAll && filter != "" {
		filtered = make([]domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if string(a.Status) == string(filter) {
				filtered = append(filtered, a)
			}
		}
	}

	s.log.Info("admin: fetched %d appointments, filter=%s matched=%d", len(appointments), filter, len(filtered))
	return &ListResult{Appointments: filtered, Stats: stats}, nil
}

// UpdateStatus переводит запись в новый статус. Статус — единственное поле
// записи, которое админ может менять. Вызывающая сторона обновляет свою
// локальную строку по возвращённому значению без повторной загрузки списка.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if _, err := domain.ParseStatus(string(status)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appt, err := s.client.UpdateAppointment(ctx, id, clinicapi.UpdateAppointmentRequest{
		Status: ptr.Ptr(status),
	})
	if err != nil {
		s.log.Error("admin: failed to update appointment id=%d status=%s: %v", id, status, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info("admin: appointment id=%d status changed to %s", id, status)
	return appt, nil
}

// Delete удаляет запись. Операция терминальна и всегда требует явного
// подтверждения — без него бэкенд не вызывается.
func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		s.log.Warn("admin: delete of appointment id=%d rejected, not confirmed", id)
		return ErrConfirmationRequired
	}

	if err := s.client.DeleteAppointment(ctx, id); err != nil {
		s.log.Error("admin: failed to delete appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info("admin: appointment id=%d deleted", id)
	return nil
}

// MessageLink собирает WhatsApp deep-link с локализованным подтверждением
// для пациента записи
func (s *Service) MessageLink(locale i18n.Locale, appt *domain.Appointment) (string, error) {
	phone := appt.PatientPhone()
	if phone == "" {
		return "", ErrNoPatientPhone
	}
	return s.notifier.PatientGreetingLink(locale, phone, appt.PatientName()), nil
}

// VerifyAdmin проверяет сконфигурированный админ-токен на бэкенде
func (s *Service) VerifyAdmin(ctx context.Context) error {
	if err := s.client.VerifyAdmin(ctx); err != nil {
		s.log.Warn("admin: token verification failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func computeStats(appointments []domain.Appointment, averagePrice float64) Stats {
	stats := Stats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	stats.ExpectedRevenue = float64(stats.Confirmed) * averagePrice
	return stats
}
