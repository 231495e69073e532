package provider

import (
	"log/slog"
	"net/http"

	"github.com/agentdesk/agentdesk/internal/routes"
	"github.com/agentdesk/agentdesk/pkg/handlers"
)

// Handler exposes the provider catalog and configuration status.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a provider HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "provider"),
	}
}

// Routes returns the route group for provider endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "Completion provider catalog and status",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/models", Handler: h.Models},
			{Method: "GET", Pattern: "/status", Handler: h.Status},
		},
	}
}

// Models handles GET /api/models to list the accepted model set.
func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Models())
}

// Status handles GET /api/status to report which provider variant is active.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{
		"mock": h.sys.Mock(),
	})
}
