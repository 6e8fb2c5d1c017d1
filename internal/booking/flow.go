package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
	"github.com/brightdental/booking-web/internal/notify"
)

// Flow оркестрирует мастер бронирования: хранит сессии, дергает бэкенд
// и диспетчер уведомлений, продвигает конечный автомат
type Flow struct {
	client   BackendClient
	notifier Notifier
	store    *Store
	log      Logger
}

// NewFlow создает новый экземпляр оркестратора
func NewFlow(client BackendClient, notifier Notifier, store *Store, log Logger) *Flow {
	return &Flow{
		client:   client,
		notifier: notifier,
		store:    store,
		log:      log,
	}
}

// StartSession создает сессию мастера для локали
func (f *Flow) StartSession(locale i18n.Locale) *View {
	sess := f.store.Create(locale)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newView(sess)
}

// GetView возвращает снимок текущего состояния сессии
func (f *Flow) GetView(sessionID string) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newView(sess), nil
}

// SelectService шаг 1 → 2: выбор услуги из каталога
func (f *Flow) SelectService(sessionID string, service domain.ServiceID) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.Wizard.SelectService(service); err != nil {
		f.log.Warn("flow: select service failed: session=%s service=%s: %v", sessionID, service, err)
		return nil, err
	}

	f.log.Info("flow: service selected: session=%s service=%s", sessionID, service)
	return newView(sess), nil
}

// SelectDate выбор даты на шаге 2. Запрашивает у бэкенда занятые слоты на
// дату; при ошибке запроса дата считается полностью свободной (fail-open) —
// поток не блокируется, ошибка только логируется.
func (f *Flow) SelectDate(ctx context.Context, sessionID string, date time.Time) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Wizard.State() != StateSelectDateTime {
		return nil, ErrInvalidTransition
	}

	dateStr := date.Format(domain.DateFormat)
	booked, err := f.client.BookedSlots(ctx, dateStr)
	if err != nil {
		f.log.Error("flow: failed to fetch booked slots for date=%s, failing open: %v", dateStr, err)
		booked = nil
	}

	if err := sess.Wizard.SetDate(date, booked); err != nil {
		return nil, err
	}

	f.log.Info("flow: date selected: session=%s date=%s booked_slots=%d", sessionID, dateStr, len(booked))
	return newView(sess), nil
}

// SelectTime шаг 2 → 3: выбор доступного слота
func (f *Flow) SelectTime(sessionID, label string) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.Wizard.SelectTime(label); err != nil {
		f.log.Warn("flow: select time failed: session=%s slot=%s: %v", sessionID, label, err)
		return nil, err
	}

	f.log.Info("flow: time selected: session=%s slot=%s", sessionID, label)
	return newView(sess), nil
}

// Back явный шаг назад
func (f *Flow) Back(sessionID string) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.Wizard.Back(); err != nil {
		return nil, err
	}
	return newView(sess), nil
}

// Submit шаг 3 → 4: материализация брони.
// Порядок: защитная валидация черновика → создание пациента → извлечение
// его идентификатора → создание записи со статусом pending → сборка
// WhatsApp deep-link → подтверждение.
func (f *Flow) Submit(ctx context.Context, sessionID string, form ContactForm) (*View, error) {
	sess, err := f.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	w := sess.Wizard
	if err := w.beginSubmit(); err != nil {
		return nil, err
	}
	defer w.endSubmit()

	// Защитная ре-валидация: без даты и времени до API не доходим
	draft := w.Draft()
	if !draft.HasDate() || !draft.HasTime() {
		f.log.Warn("flow: submit rejected, draft incomplete: session=%s", sessionID)
		return newView(sess), ErrMissingDateTime
	}
	if err := form.Validate(); err != nil {
		return newView(sess), err
	}

	// 1. Создаем или переиспользуем запись пациента
	patientResp, err := f.client.CreatePatient(ctx, clinicapi.CreatePatientRequest{
		Name:  form.FullName,
		Phone: form.Phone,
		Email: form.Email,
	})
	if err != nil {
		return f.submitFailed(sess, "create patient", err)
	}

	patientID, err := patientResp.PatientID()
	if err != nil {
		return f.submitFailed(sess, "extract patient id", err)
	}

	// 2. Создаем запись на приём, всегда со статусом pending
	dateStr := draft.Date.Format(domain.DateFormat)
	serviceName := ServiceName(sess.Locale, draft.Service)

	appt, err := f.client.CreateAppointment(ctx, clinicapi.CreateAppointmentRequest{
		PatientID:       patientID,
		Service:         serviceName,
		AppointmentDate: dateStr,
		AppointmentTime: draft.Time,
		Status:          domain.StatusPending,
		Notes:           form.Notes,
	})
	if err != nil {
		return f.submitFailed(sess, "create appointment", err)
	}

	// 3. Собираем WhatsApp-ссылку с локализованной сводкой для клиники
	displayDate := i18n.DisplayDate(sess.Locale, draft.Date)
	link := f.notifier.NewBookingLink(sess.Locale, notify.BookingDetails{
		PatientName: form.FullName,
		Phone:       form.Phone,
		Email:       form.Email,
		ServiceName: serviceName,
		DisplayDate: displayDate,
		SlotLabel:   draft.Time,
		Notes:       form.Notes,
	})

	w.confirm(&Confirmation{
		AppointmentID: appt.ID,
		ServiceName:   serviceName,
		DisplayDate:   displayDate,
		SlotLabel:     draft.Time,
		WhatsAppURL:   link,
		HomePath:      "/" + sess.Locale.String(),
	})

	f.log.Info("flow: booking confirmed: session=%s appointment_id=%d service=%s date=%s time=%s",
		sessionID, appt.ID, draft.Service, dateStr, draft.Time)
	return newView(sess), nil
}

// submitFailed классифицирует ошибку отправки. Конфликт слота принудительно
// возвращает мастер на шаг 2; остальные ошибки оставляют его на шаге 3 и
// позволяют повторную отправку.
func (f *Flow) submitFailed(sess *Session, stage string, err error) (*View, error) {
	if isSlotConflict(err) {
		f.log.Warn("flow: slot conflict on submit: session=%s: %v", sess.ID, err)
		sess.Wizard.regressToDateTime()
		return newView(sess), ErrSlotTaken
	}

	f.log.Error("flow: submit failed at %s: session=%s: %v", stage, sess.ID, err)
	return newView(sess), fmt.Errorf("%w: %w", ErrInternal, err)
}

// isSlotConflict распознаёт ответ "слот только что заняли" по подстроке
// текста ошибки (case-sensitive). Структурированного кода конфликта бэкенд
// не отдаёт, так что это намеренно сохранённый шим совместимости с его
// текущими формулировками.
func isSlotConflict(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "time slot") || strings.Contains(msg, "already booked")
}
