package get_session

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

const keySessionExpired = "booking.errors.sessionExpired"

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

// Handle GET /{locale}/api/v1/booking/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.flow.GetView(sessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			h.logger.Warn("GET /booking/sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, t.Resolve(keySessionExpired))
			return
		}
		h.logger.Error("GET /booking/sessions/{id} - Failed: session=%s error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wizardview.FromView(view))
}
