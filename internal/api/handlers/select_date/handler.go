package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/handlers/wizardview"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/i18n"
)

const (
	keySessionExpired = "booking.errors.sessionExpired"
	keyBadRequest     = "common.badRequest"
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

// Handle POST /{locale}/api/v1/booking/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/.../date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("POST /booking/.../date - Invalid date: session=%s date=%q", sessionID, req.Date)
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	view, err := h.flow.SelectDate(r.Context(), sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			handlers.RespondNotFound(w, t.Resolve(keySessionExpired))

		case errors.Is(err, booking.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, t.Resolve(keyBadRequest))

		default:
			h.logger.Error("POST /booking/.../date - Failed: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wizardview.FromView(view))
}
