package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
	"github.com/brightdental/booking-web/internal/notify"
	"github.com/brightdental/booking-web/pkg/ptr"
)

type fakeBackend struct {
	bookedSlots []string
	bookedErr   error
	patientResp *clinicapi.CreatePatientResponse
	patientErr  error
	apptResp    *domain.Appointment
	apptErr     error

	bookedCalls        []string
	createPatientCalls []clinicapi.CreatePatientRequest
	createApptCalls    []clinicapi.CreateAppointmentRequest
}

func (f *fakeBackend) CreatePatient(_ context.Context, req clinicapi.CreatePatientRequest) (*clinicapi.CreatePatientResponse, error) {
	f.createPatientCalls = append(f.createPatientCalls, req)
	if f.patientErr != nil {
		return nil, f.patientErr
	}
	return f.patientResp, nil
}

func (f *fakeBackend) CreateAppointment(_ context.Context, req clinicapi.CreateAppointmentRequest) (*domain.Appointment, error) {
	f.createApptCalls = append(f.createApptCalls, req)
	if f.apptErr != nil {
		return nil, f.apptErr
	}
	return f.apptResp, nil
}

func (f *fakeBackend) BookedSlots(_ context.Context, date string) ([]string, error) {
	f.bookedCalls = append(f.bookedCalls, date)
	return f.bookedSlots, f.bookedErr
}

type fakeNotifier struct {
	lastDetails notify.BookingDetails
	lastLocale  i18n.Locale
}

func (f *fakeNotifier) NewBookingLink(locale i18n.Locale, d notify.BookingDetails) string {
	f.lastLocale = locale
	f.lastDetails = d
	return "https://wa.me/201110215455?text=stub"
}

func newTestFlow(backend *fakeBackend) (*Flow, *fakeNotifier, *Store) {
	notifier := &fakeNotifier{}
	store := NewStore(30*time.Minute, &RealTimeProvider{}, nopLogger{})
	return NewFlow(backend, notifier, store, nopLogger{}), notifier, store
}

func validForm() ContactForm {
	return ContactForm{
		FullName: "Sara Ali",
		Phone:    "+201001234567",
		Email:    "sara@example.com",
	}
}

func TestFlow_FullBookingScenario(t *testing.T) {
	backend := &fakeBackend{
		bookedSlots: []string{"09:00 AM", "09:30 AM"},
		patientResp: &clinicapi.CreatePatientResponse{Data: &clinicapi.PatientRef{ID: 42}},
		apptResp:    &domain.Appointment{ID: 7, Status: domain.StatusPending},
	}
	flow, notifier, _ := newTestFlow(backend)
	ctx := context.Background()

	view := flow.StartSession(i18n.LocaleEn)
	require.Equal(t, StateSelectService, view.State)
	require.NotEmpty(t, view.Services)
	sessionID := view.SessionID

	view, err := flow.SelectService(sessionID, domain.ServiceWhitening)
	require.NoError(t, err)
	assert.Equal(t, StateSelectDateTime, view.State)

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	view, err = flow.SelectDate(ctx, sessionID, date)
	require.NoError(t, err)
	require.Equal(t, []string{"2025-03-10"}, backend.bookedCalls)

	// Занятые утренние слоты помечены, остальные свободны
	require.Len(t, view.Slots, 12)
	for _, s := range view.Slots {
		switch s.Label {
		case "09:00 AM", "09:30 AM":
			assert.False(t, s.Available, "slot %s", s.Label)
		default:
			assert.True(t, s.Available, "slot %s", s.Label)
		}
	}

	view, err = flow.SelectTime(sessionID, "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, StateFillDetails, view.State)

	view, err = flow.Submit(ctx, sessionID, validForm())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, view.State)

	// Пациент создаётся раньше записи
	require.Len(t, backend.createPatientCalls, 1)
	assert.Equal(t, "Sara Ali", backend.createPatientCalls[0].Name)

	require.Len(t, backend.createApptCalls, 1)
	appt := backend.createApptCalls[0]
	assert.Equal(t, int64(42), appt.PatientID)
	assert.Equal(t, "Teeth Whitening", appt.Service)
	assert.Equal(t, "2025-03-10", appt.AppointmentDate)
	assert.Equal(t, "10:00 AM", appt.AppointmentTime)
	assert.Equal(t, domain.StatusPending, appt.Status)

	require.NotNil(t, view.Confirmation)
	assert.Equal(t, int64(7), view.Confirmation.AppointmentID)
	assert.Equal(t, "Teeth Whitening", view.Confirmation.ServiceName)
	assert.Equal(t, "10 March 2025", view.Confirmation.DisplayDate)
	assert.Equal(t, "10:00 AM", view.Confirmation.SlotLabel)
	assert.Equal(t, "https://wa.me/201110215455?text=stub", view.Confirmation.WhatsAppURL)
	assert.Equal(t, "/en", view.Confirmation.HomePath)

	assert.Equal(t, i18n.LocaleEn, notifier.lastLocale)
	assert.Equal(t, "Sara Ali", notifier.lastDetails.PatientName)
	assert.Equal(t, "10 March 2025", notifier.lastDetails.DisplayDate)
}

func TestFlow_SelectDate_FailsOpenOnBackendError(t *testing.T) {
	backend := &fakeBackend{bookedErr: clinicapi.ErrRequestFailed}
	flow, _, _ := newTestFlow(backend)

	view := flow.StartSession(i18n.LocaleAr)
	_, err := flow.SelectService(view.SessionID, domain.ServiceCleaning)
	require.NoError(t, err)

	got, err := flow.SelectDate(context.Background(), view.SessionID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Ошибка бэкенда не блокирует поток: все слоты показаны свободными
	require.Len(t, got.Slots, 12)
	for _, s := range got.Slots {
		assert.True(t, s.Available)
	}
}

func TestFlow_Submit_SlotConflictRegressesToDateTime(t *testing.T) {
	backend := &fakeBackend{
		patientResp: &clinicapi.CreatePatientResponse{ID: ptr.Ptr(int64(42))},
		apptErr: &clinicapi.ResponseError{
			StatusCode: 400,
			Message:    "This time slot is already booked",
		},
	}
	flow, _, _ := newTestFlow(backend)
	ctx := context.Background()

	view := flow.StartSession(i18n.LocaleEn)
	sessionID := view.SessionID
	_, err := flow.SelectService(sessionID, domain.ServiceWhitening)
	require.NoError(t, err)
	_, err = flow.SelectDate(ctx, sessionID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = flow.SelectTime(sessionID, "10:00 AM")
	require.NoError(t, err)

	got, err := flow.Submit(ctx, sessionID, validForm())
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NotNil(t, got)
	assert.Equal(t, StateSelectDateTime, got.State)
	assert.Empty(t, got.Time)

	// Кеш занятых слотов при откате не перечитывается: конфликтный слот
	// всё ещё показан свободным
	require.Len(t, backend.bookedCalls, 1)
	for _, s := range got.Slots {
		if s.Label == "10:00 AM" {
			assert.True(t, s.Available)
		}
	}
}

func TestFlow_Submit_GenericBackendErrorStaysOnDetails(t *testing.T) {
	backend := &fakeBackend{
		patientResp: &clinicapi.CreatePatientResponse{ID: ptr.Ptr(int64(42))},
		apptErr:     clinicapi.ErrRequestFailed,
	}
	flow, _, _ := newTestFlow(backend)
	ctx := context.Background()

	view := flow.StartSession(i18n.LocaleEn)
	sessionID := view.SessionID
	_, err := flow.SelectService(sessionID, domain.ServiceBraces)
	require.NoError(t, err)
	_, err = flow.SelectDate(ctx, sessionID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = flow.SelectTime(sessionID, "03:00 PM")
	require.NoError(t, err)

	got, err := flow.Submit(ctx, sessionID, validForm())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, StateFillDetails, got.State)

	// Повторная отправка после сбоя возможна
	backend.apptErr = nil
	backend.apptResp = &domain.Appointment{ID: 9, Status: domain.StatusPending}
	got, err = flow.Submit(ctx, sessionID, validForm())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, got.State)
}

func TestFlow_Submit_IncompleteDraftMakesNoAPICall(t *testing.T) {
	backend := &fakeBackend{}
	flow, _, store := newTestFlow(backend)

	sess := store.Create(i18n.LocaleEn)
	// Сессия доведена до шага контактов с выпотрошенным черновиком:
	// защитная валидация должна сработать до любого вызова бэкенда
	sess.Wizard.state = StateFillDetails

	view, err := flow.Submit(context.Background(), sess.ID, validForm())
	assert.ErrorIs(t, err, ErrMissingDateTime)
	assert.Equal(t, StateFillDetails, view.State)
	assert.Empty(t, backend.createPatientCalls)
	assert.Empty(t, backend.createApptCalls)
}

func TestFlow_Submit_InvalidContactMakesNoAPICall(t *testing.T) {
	backend := &fakeBackend{}
	flow, _, _ := newTestFlow(backend)
	ctx := context.Background()

	view := flow.StartSession(i18n.LocaleEn)
	sessionID := view.SessionID
	_, err := flow.SelectService(sessionID, domain.ServiceWhitening)
	require.NoError(t, err)
	_, err = flow.SelectDate(ctx, sessionID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = flow.SelectTime(sessionID, "10:00 AM")
	require.NoError(t, err)

	_, err = flow.Submit(ctx, sessionID, ContactForm{FullName: "Sara Ali", Phone: "  "})
	assert.ErrorIs(t, err, ErrInvalidContact)
	assert.Empty(t, backend.createPatientCalls)
}

func TestFlow_Submit_PatientIDFromTopLevelField(t *testing.T) {
	backend := &fakeBackend{
		patientResp: &clinicapi.CreatePatientResponse{ID: ptr.Ptr(int64(101))},
		apptResp:    &domain.Appointment{ID: 3, Status: domain.StatusPending},
	}
	flow, _, _ := newTestFlow(backend)
	ctx := context.Background()

	view := flow.StartSession(i18n.LocaleAr)
	sessionID := view.SessionID
	_, err := flow.SelectService(sessionID, domain.ServiceImplant)
	require.NoError(t, err)
	_, err = flow.SelectDate(ctx, sessionID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = flow.SelectTime(sessionID, "09:00 AM")
	require.NoError(t, err)

	got, err := flow.Submit(ctx, sessionID, validForm())
	require.NoError(t, err)
	require.Len(t, backend.createApptCalls, 1)
	assert.Equal(t, int64(101), backend.createApptCalls[0].PatientID)

	// Арабская локаль даёт арабское имя услуги и арабскую дату
	assert.Equal(t, "زراعة أسنان", backend.createApptCalls[0].Service)
	assert.Equal(t, "01 أبريل 2025", got.Confirmation.DisplayDate)
	assert.Equal(t, "/ar", got.Confirmation.HomePath)
}

func TestFlow_UnknownSessionID(t *testing.T) {
	flow, _, _ := newTestFlow(&fakeBackend{})

	_, err := flow.GetView("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = flow.SelectService("missing", domain.ServiceWhitening)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = flow.Submit(context.Background(), "missing", validForm())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
