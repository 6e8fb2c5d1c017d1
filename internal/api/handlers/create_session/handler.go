package create_session

import (
	"net/http"

	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/handlers/wizardview"
	"github.com/brightdental/booking-web/internal/api/middleware"
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

// Handle POST /{locale}/api/v1/booking/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromRequest(r)

	view := h.flow.StartSession(locale)

	h.logger.Info("POST /booking/sessions - Session created: session=%s locale=%s", view.SessionID, locale)
	handlers.RespondJSON(w, http.StatusCreated, wizardview.FromView(view))
}
