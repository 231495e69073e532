package execution

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agentdesk/agentdesk/internal/agents"
	"github.com/agentdesk/agentdesk/internal/routes"
	"github.com/agentdesk/agentdesk/pkg/handlers"
	"github.com/google/uuid"
)

// Handler provides the HTTP handler for agent execution.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an execution HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "execution"),
	}
}

// Routes returns the route group configuration for execution endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/agents",
		Description: "Agent execution",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{id}/execute", Handler: h.Execute},
		},
	}
}

// Execute handles POST /api/agents/{id}/execute to run an agent against
// user input and optional resource context.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Input       string      `json:"input"`
		ResourceIDs []uuid.UUID `json:"resource_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(body.Input) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, agents.ErrValidation)
		return
	}

	result, err := h.sys.Execute(r.Context(), Request{
		AgentID:     id,
		Input:       body.Input,
		ResourceIDs: body.ResourceIDs,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, agents.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
