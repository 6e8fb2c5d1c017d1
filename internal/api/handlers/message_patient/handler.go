package message_patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/admin"
	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/i18n"
)

const (
	keyBadRequest  = "common.badRequest"
	keyNotFound    = "common.notFound"
	keyNoPhone     = "admin.errors.noPhone"
	keyFetchFailed = "admin.errors.fetchFailed"
)

type Handler struct {
	client    BackendClient
	dashboard Dashboard
	logger    Logger
}

func NewHandler(client BackendClient, dashboard Dashboard, logger Logger) *Handler {
	return &Handler{
		client:    client,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Handle POST /{locale}/api/v1/admin/appointments/{appointmentId}/message
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromRequest(r)
	t := i18n.T(locale)

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	appt, err := h.client.GetAppointment(r.Context(), id)
	if err != nil {
		h.logger.Error("POST /admin/appointments/{id}/message - Failed to fetch appointment: id=%d error=%v", id, err)
		handlers.RespondError(w, http.StatusBadGateway, t.Resolve(keyFetchFailed))
		return
	}
	if appt == nil {
		handlers.RespondNotFound(w, t.Resolve(keyNotFound))
		return
	}

	link, err := h.dashboard.MessageLink(locale, appt)
	if err != nil {
		if errors.Is(err, admin.ErrNoPatientPhone) {
			h.logger.Warn("POST /admin/appointments/{id}/message - No patient phone: id=%d", id)
			handlers.RespondBadRequest(w, t.Resolve(keyNoPhone))
			return
		}
		h.logger.Error("POST /admin/appointments/{id}/message - Failed: id=%d error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/appointments/{id}/message - Link built: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, MessageLinkResponse{URL: link})
}
