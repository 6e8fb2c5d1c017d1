package submit_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeFlow struct {
	view *booking.View
	err  error

	gotSessionID string
	gotForm      booking.ContactForm
}

func (f *fakeFlow) Submit(_ context.Context, sessionID string, form booking.ContactForm) (*booking.View, error) {
	f.gotSessionID = sessionID
	f.gotForm = form
	return f.view, f.err
}

func serve(t *testing.T, flow *fakeFlow, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	sub := r.PathPrefix("/{locale:ar|en}").Subrouter()
	sub.Use(middleware.Locale())
	handler := NewHandler(flow, nopLogger{})
	sub.HandleFunc("/api/v1/booking/sessions/{sessionId}/submit", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/en/api/v1/booking/sessions/sess-1/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func confirmedView() *booking.View {
	return &booking.View{
		SessionID: "sess-1",
		Locale:    i18n.LocaleEn,
		State:     booking.StateConfirmed,
		Confirmation: &booking.Confirmation{
			AppointmentID: 7,
			ServiceName:   "Teeth Whitening",
			DisplayDate:   "10 March 2025",
			SlotLabel:     "10:00 AM",
			WhatsAppURL:   "https://wa.me/201110215455?text=x",
			HomePath:      "/en",
		},
	}
}

func TestHandle_Success(t *testing.T) {
	flow := &fakeFlow{view: confirmedView()}

	rec := serve(t, flow, `{"fullName":"Sara Ali","phone":"+201001234567","email":"sara@example.com","notes":"first visit"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "sess-1", flow.gotSessionID)
	assert.Equal(t, "Sara Ali", flow.gotForm.FullName)
	assert.Equal(t, "first visit", flow.gotForm.Notes)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "confirmed", resp["state"])

	conf, ok := resp["confirmation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Teeth Whitening", conf["serviceName"])
	assert.Equal(t, "10 March 2025", conf["date"])
}

func TestHandle_InvalidBody(t *testing.T) {
	flow := &fakeFlow{}
	rec := serve(t, flow, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, flow.gotSessionID)
}

func TestHandle_SlotConflictReturnsRegressedView(t *testing.T) {
	regressed := &booking.View{
		SessionID: "sess-1",
		Locale:    i18n.LocaleEn,
		State:     booking.StateSelectDateTime,
	}
	flow := &fakeFlow{view: regressed, err: booking.ErrSlotTaken}

	rec := serve(t, flow, `{"fullName":"Sara Ali","phone":"+2","email":"s@e.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp FailureResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Sorry, this time slot was just booked. Please select another time.", resp.Message)
	require.NotNil(t, resp.View)
	assert.Equal(t, "select_datetime", resp.View.State)
}

func TestHandle_MissingDateTime(t *testing.T) {
	staying := &booking.View{SessionID: "sess-1", Locale: i18n.LocaleEn, State: booking.StateFillDetails}
	flow := &fakeFlow{view: staying, err: booking.ErrMissingDateTime}

	rec := serve(t, flow, `{"fullName":"Sara Ali","phone":"+2","email":"s@e.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp FailureResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Please make sure to select date and time", resp.Message)
}

func TestHandle_SessionExpired(t *testing.T) {
	flow := &fakeFlow{err: booking.ErrSessionNotFound}

	rec := serve(t, flow, `{"fullName":"a","phone":"b","email":"c"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BackendErrorSurfacesBackendMessage(t *testing.T) {
	staying := &booking.View{SessionID: "sess-1", Locale: i18n.LocaleEn, State: booking.StateFillDetails}
	flow := &fakeFlow{
		view: staying,
		err: &clinicapi.ResponseError{
			StatusCode: 422,
			Message:    "Phone number is invalid",
		},
	}

	rec := serve(t, flow, `{"fullName":"a","phone":"b","email":"c"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp FailureResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Phone number is invalid", resp.Message)
}
