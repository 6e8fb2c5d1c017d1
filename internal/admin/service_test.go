package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBackend struct {
	appointments []domain.Appointment
	listErr      error
	updated      *domain.Appointment
	updateErr    error
	verifyErr    error

	updateCalls []clinicapi.UpdateAppointmentRequest
	deleteCalls []int64
}

func (f *fakeBackend) ListAppointments(_ context.Context) ([]domain.Appointment, error) {
	return f.appointments, f.listErr
}

func (f *fakeBackend) UpdateAppointment(_ context.Context, id int64, req clinicapi.UpdateAppointmentRequest) (*domain.Appointment, error) {
	f.updateCalls = append(f.updateCalls, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeBackend) DeleteAppointment(_ context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

func (f *fakeBackend) VerifyAdmin(_ context.Context) error {
	return f.verifyErr
}

type fakeNotifier struct{}

func (fakeNotifier) PatientGreetingLink(locale i18n.Locale, phone, patientName string) string {
	return "https://wa.me/" + phone
}

func sampleAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: 1, Status: domain.StatusConfirmed},
		{ID: 2, Status: domain.StatusConfirmed},
		{ID: 3, Status: domain.StatusPending},
		{ID: 4, Status: domain.StatusCancelled},
	}
}

func TestService_List_StatsAlwaysOverFullList(t *testing.T) {
	backend := &fakeBackend{appointments: sampleAppointments()}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	result, err := svc.List(context.Background(), FilterConfirmed)
	require.NoError(t, err)

	// Фильтр сужает список, но сводка считается по всем записям
	assert.Len(t, result.Appointments, 2)
	assert.Equal(t, 4, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Confirmed)
	assert.Equal(t, 1, result.Stats.Pending)
	assert.Equal(t, 1, result.Stats.Cancelled)
	assert.Equal(t, 7000.0, result.Stats.ExpectedRevenue)
}

func TestService_List_AllFilter(t *testing.T) {
	backend := &fakeBackend{appointments: sampleAppointments()}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	result, err := svc.List(context.Background(), FilterAll)
	require.NoError(t, err)
	assert.Len(t, result.Appointments, 4)
}

func TestService_List_EmptyBackend(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	result, err := svc.List(context.Background(), FilterAll)
	require.NoError(t, err)
	assert.Empty(t, result.Appointments)
	assert.Zero(t, result.Stats.Total)
	assert.Zero(t, result.Stats.ExpectedRevenue)
}

func TestService_List_BackendError(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("boom")}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	_, err := svc.List(context.Background(), FilterAll)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateStatus(t *testing.T) {
	backend := &fakeBackend{updated: &domain.Appointment{ID: 3, Status: domain.StatusConfirmed}}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	appt, err := svc.UpdateStatus(context.Background(), 3, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, appt.IsConfirmed())

	// В бэкенд уходит только статус
	require.Len(t, backend.updateCalls, 1)
	req := backend.updateCalls[0]
	require.NotNil(t, req.Status)
	assert.Equal(t, domain.StatusConfirmed, *req.Status)
	assert.Nil(t, req.Service)
	assert.Nil(t, req.AppointmentDate)
	assert.Nil(t, req.AppointmentTime)
	assert.Nil(t, req.Notes)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 3, domain.AppointmentStatus("done"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, backend.updateCalls)
}

func TestService_Delete_RequiresConfirmation(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, fakeNotifier{}, 3500, nopLogger{})

	err := svc.Delete(context.Background(), 7, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, backend.deleteCalls)

	require.NoError(t, svc.Delete(context.Background(), 7, true))
	assert.Equal(t, []int64{7}, backend.deleteCalls)
}

func TestService_MessageLink(t *testing.T) {
	svc := NewService(&fakeBackend{}, fakeNotifier{}, 3500, nopLogger{})

	appt := &domain.Appointment{
		ID:      1,
		Patient: &domain.Patient{Name: "Sara Ali", Phone: "+201001234567"},
	}
	link, err := svc.MessageLink(i18n.LocaleEn, appt)
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/+201001234567", link)
}

func TestService_MessageLink_NoPhone(t *testing.T) {
	svc := NewService(&fakeBackend{}, fakeNotifier{}, 3500, nopLogger{})

	_, err := svc.MessageLink(i18n.LocaleEn, &domain.Appointment{ID: 1})
	assert.ErrorIs(t, err, ErrNoPatientPhone)

	_, err = svc.MessageLink(i18n.LocaleEn, &domain.Appointment{ID: 1, Patient: &domain.Patient{Name: "x"}})
	assert.ErrorIs(t, err, ErrNoPatientPhone)
}

func TestService_VerifyAdmin(t *testing.T) {
	svc := NewService(&fakeBackend{}, fakeNotifier{}, 3500, nopLogger{})
	assert.NoError(t, svc.VerifyAdmin(context.Background()))

	svc = NewService(&fakeBackend{verifyErr: errors.New("401")}, fakeNotifier{}, 3500, nopLogger{})
	assert.ErrorIs(t, svc.VerifyAdmin(context.Background()), ErrInternal)
}

func TestParseStatusFilter(t *testing.T) {
	filter, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, filter)

	filter, err = ParseStatusFilter("confirmed")
	require.NoError(t, err)
	assert.Equal(t, FilterConfirmed, filter)

	_, err = ParseStatusFilter("archived")
	assert.Error(t, err)
}
