package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/agentdesk/agentdesk/internal/agents"
	"github.com/agentdesk/agentdesk/internal/config"
	"github.com/agentdesk/agentdesk/internal/execution"
	"github.com/agentdesk/agentdesk/internal/extract"
	"github.com/agentdesk/agentdesk/internal/provider"
	"github.com/agentdesk/agentdesk/internal/resources"
	"github.com/agentdesk/agentdesk/internal/routes"
	"github.com/agentdesk/agentdesk/internal/storage"
	"github.com/agentdesk/agentdesk/pkg/handlers"
)

// buildHandler wires the domain systems and their HTTP handlers into a
// single route tree.
func buildHandler(cfg *config.Config, db *sql.DB, logger *slog.Logger) (http.Handler, error) {
	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	extractor := extract.New()
	providerSys := provider.New(&cfg.Provider, logger)

	agentSys := agents.New(db, logger, cfg.Pagination, agents.Defaults{
		Model:       cfg.Provider.DefaultModel,
		Temperature: cfg.Provider.DefaultTemperature,
		MaxTokens:   cfg.Provider.DefaultMaxTokens,
	})

	resourceSys := resources.New(db, logger, cfg.Pagination, store, extractor, cfg.Storage.MaxUploadSizeBytes())

	executionSys := execution.New(agentSys, resourceSys, providerSys, cfg.Provider.TimeoutDuration(), logger)

	router := routes.New(logger)
	router.RegisterGroup(agents.NewHandler(agentSys, logger, cfg.Pagination).Routes())
	router.RegisterGroup(resources.NewHandler(resourceSys, logger, cfg.Pagination, cfg.Storage.MaxUploadSizeBytes()).Routes())
	router.RegisterGroup(execution.NewHandler(executionSys, logger).Routes())
	router.RegisterGroup(provider.NewHandler(providerSys, logger).Routes())
	router.RegisterRoute(routes.Route{Method: "GET", Pattern: "/healthz", Handler: healthz(db)})

	return router.Build(), nil
}

// healthz reports process and database liveness.
func healthz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
