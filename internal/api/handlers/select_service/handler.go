package select_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/handlers/wizardview"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/domain"
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

// Handle POST /{locale}/api/v1/booking/sessions/{sessionId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/.../service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	view, err := h.flow.SelectService(sessionID, domain.ServiceID(req.Service))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			handlers.RespondNotFound(w, t.Resolve(keySessionExpired))

		case errors.Is(err, booking.ErrUnknownService):
			h.logger.Warn("POST /booking/.../service - Unknown service: session=%s service=%s", sessionID, req.Service)
			handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))

		case errors.Is(err, booking.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, t.Resolve(keyBadRequest))

		default:
			h.logger.Error("POST /booking/.../service - Failed: session=%s error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wizardview.FromView(view))
}
