package verify_admin

import (
	"net/http"

	"github.com/brightdental/booking-web/internal/api/handlers"
)

// VerifyAdminResponse HTTP response model
type VerifyAdminResponse struct {
	Valid bool `json:"valid"`
}

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

// Handle POST /{locale}/api/v1/admin/verify
// Прокидывает сконфигурированный админ-токен на бэкенд и возвращает
// вердикт. Невалидный токен — это 401 с valid=false, а не 500.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.VerifyAdmin(r.Context()); err != nil {
		h.logger.Warn("POST /admin/verify - Verification failed: %v", err)
		handlers.RespondJSON(w, http.StatusUnauthorized, VerifyAdminResponse{Valid: false})
		return
	}

	h.logger.Info("POST /admin/verify - Token verified")
	handlers.RespondJSON(w, http.StatusOK, VerifyAdminResponse{Valid: true})
}
