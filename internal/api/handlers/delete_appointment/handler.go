package delete_appointment

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
	keyBadRequest    = "common.badRequest"
	keyConfirmDelete = "admin.confirmDelete"
	keyDeleteFailed  = "admin.errors.deleteFailed"
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

// Handle DELETE /{locale}/api/v1/admin/appointments/{appointmentId}?confirm=true
// Удаление терминально и требует явного confirm=true в каждом запросе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, t.Resolve(keyBadRequest))
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := h.dashboard.Delete(r.Context(), id, confirmed); err != nil {
		switch {
		case errors.Is(err, admin.ErrConfirmationRequired):
			h.logger.Warn("DELETE /admin/appointments/{id} - Not confirmed: id=%d", id)
			handlers.RespondError(w, http.StatusPreconditionRequired, t.Resolve(keyConfirmDelete))

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed: id=%d error=%v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, t.Resolve(keyDeleteFailed))
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{id} - Deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
