package list_appointments

import (
	"net/http"

	"github.com/brightdental/booking-web/internal/admin"
	"github.com/brightdental/booking-web/internal/api/handlers"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/i18n"
)

const (
	keyInvalidStatus = "admin.errors.invalidStatus"
	keyFetchFailed   = "admin.errors.fetchFailed"
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

// Handle GET /{locale}/api/v1/admin/appointments?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	t := i18n.T(middleware.LocaleFromRequest(r))

	filter, err := admin.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid status filter: %v", err)
		handlers.RespondBadRequest(w, t.Resolve(keyInvalidStatus))
		return
	}

	result, err := h.dashboard.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list: filter=%s error=%v", filter, err)
		handlers.RespondError(w, http.StatusBadGateway, t.Resolve(keyFetchFailed))
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments, filter=%s", len(result.Appointments), filter)
	handlers.RespondJSON(w, http.StatusOK, FromListResult(result))
}
