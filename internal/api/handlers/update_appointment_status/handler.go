package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/brightdental/booking-web/internal/admin"
	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
)

const (
	keyBadRequest    = "common.badRequest"
	keyInvalidStatus = "admin.errors.invalidStatus"
	keyUpdateFailed  = "admin.errors.updateFailed"
)

type Handler struct {
	dashboard Dashboard
	logger    Logger
}

func NewHandler(dashboard Dashboard, logger Logger) *Handler {
	return &Handler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Handle PATCH /{locale}/api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	appt, err := h.dashboard.UpdateStatus(r.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status: id=%d status=%q", id, req.Status)
			handlers.RespondBadRequest(w, t.Resolve(keyInvalidStatus))

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed: id=%d error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, t.Resolve(keyUpdateFailed))
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Updated: id=%d status=%s", id, appt.Status)
	handlers.RespondJSON(w, http.StatusOK, FromAppointment(appt))
}
