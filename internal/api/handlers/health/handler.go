package health

import (
	"net/http"

	"github.com/brightdental/booking-web/internal/api/handlers"
)

// HealthResponse HTTP response model. Сервис жив независимо от бэкенда,
// его доступность отражается отдельным полем.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type Handler struct {
	client BackendClient
	logger Logger
}

func NewHandler(client BackendClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	backend := "up"
	if _, err := h.client.Health(r.Context()); err != nil {
		h.logger.Warn("GET /health - Backend unreachable: %v", err)
		backend = "down"
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Backend: backend})
}
