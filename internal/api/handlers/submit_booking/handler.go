package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/handlers/wizardview"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/i18n"
	"github.com/brightdental/booking-web/internal/integrations/clinicapi"
)

const (
	keySessionExpired     = "booking.errors.sessionExpired"
	keyBadRequest         = "common.badRequest"
	keyMissingDateTime    = "booking.errors.missingDateTime"
	keyInvalidContact     = "booking.errors.invalidContact"
	keySlotTaken          = "booking.errors.slotTaken"
	keySubmissionInFlight = "booking.errors.submissionInFlight"
	keyGeneric            = "booking.errors.generic"
)

type Handler struct {
	flow   BookingFlow
	logger Logger
}

func NewHandler(flow BookingFlow, logger Logger) *Handler {
	return &Handler{
		flow:   flow,
		logger: logger,
	}
}

// Handle POST /{locale}/api/v1/booking/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/.../submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	view, err := h.flow.Submit(r.Context(), sessionID, req.ToContactForm())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			handlers.RespondNotFound(w, t.Resolve(keySessionExpired))

		case errors.Is(err, booking.ErrMissingDateTime):
			h.logger.Warn("POST /booking/.../submit - Draft incomplete: session=%s", sessionID)
			respondFailure(w, http.StatusBadRequest, t.Resolve(keyMissingDateTime), view)

		case errors.Is(err, booking.ErrInvalidContact):
			respondFailure(w, http.StatusBadRequest, t.Resolve(keyInvalidContact), view)

		case errors.Is(err, booking.ErrSlotTaken):
			h.logger.Warn("POST /booking/.../submit - Slot conflict: session=%s", sessionID)
			respondFailure(w, http.StatusConflict, t.Resolve(keySlotTaken), view)

		case errors.Is(err, booking.ErrSubmissionInFlight):
			handlers.RespondError(w, http.StatusConflict, t.Resolve(keySubmissionInFlight))

		case errors.Is(err, booking.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, t.Resolve(keyBadRequest))

		default:
			h.logger.Error("POST /booking/.../submit - Failed: session=%s error=%v", sessionID, err)
			respondFailure(w, http.StatusBadGateway, backendMessage(t, err), view)
		}
		return
	}

	h.logger.Info("POST /booking/.../submit - Booking confirmed: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusCreated, wizardview.FromView(view))
}

func respondFailure(w http.ResponseWriter, status int, message string, view *booking.View) {
	body := FailureResponse{Message: message}
	if view != nil {
		body.View = wizardview.FromView(view)
	}
	handlers.RespondJSON(w, status, body)
}

// backendMessage выбирает текст для пользователя: если бэкенд вернул
// осмысленное сообщение об ошибке, показываем его, иначе локализованный
// общий текст
func backendMessage(t *i18n.Translator, err error) string {
	var respErr *clinicapi.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return t.Resolve(keyGeneric)
}
