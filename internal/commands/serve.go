package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/handlers"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/SscSPs/retail_finance_core/internal/utils"
	"github.com/SscSPs/retail_finance_core/pkg/database"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the finance HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, runMigrations)
		},
	}
	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func (a *app) serve(ctx context.Context, runMigrations bool) error {
	logger := a.logger

	if runMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(logger, a.cfg.DatabaseURL, a.cfg.MigrationsPath, database.MigrateUp); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
	}

	container, closePool, err := a.openServices(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	rateLimiter, err := middleware.NewRateLimiter(a.cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		return err
	}
	analytics := utils.InitializePosthogClient(a.cfg.PosthogAPIKey, a.cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	r, err := handlers.NewRouter(logger, a.cfg, container, handlers.RouterDeps{
		Limiter:   rateLimiter,
		Analytics: analytics,
	})
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", a.cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
