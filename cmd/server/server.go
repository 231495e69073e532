package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentdesk/agentdesk/internal/config"
	"github.com/agentdesk/agentdesk/migrations"
	"github.com/agentdesk/agentdesk/pkg/database"
	"github.com/agentdesk/agentdesk/pkg/middleware"
)

// run starts the HTTP server and blocks until shutdown completes.
func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, migrations.Files); err != nil {
		return err
	}

	handler, err := buildHandler(cfg, db, logger)
	if err != nil {
		return err
	}

	handler = middleware.CORS(&cfg.CORS)(handler)
	handler = middleware.Logger(logger)(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("server starting", "addr", srv.Addr)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
