// Package commands holds the finance_backend CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	coresvc "github.com/SscSPs/retail_finance_core/internal/core/services"
	"github.com/SscSPs/retail_finance_core/internal/notifications"
	"github.com/SscSPs/retail_finance_core/internal/platform/config"
	"github.com/SscSPs/retail_finance_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/retail_finance_core/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// app carries what every subcommand needs once the root pre-run has finished.
type app struct {
	logger *slog.Logger
	cfg    *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "finance_backend",
		Short:   "Retail finance ledger and reporting core",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			a.logger = newLogger(cmd.ErrOrStderr(), level)
			slog.SetDefault(a.logger)

			cfg, err := config.LoadConfig()
			if err != nil {
				a.logger.Error("Failed to load config", slog.String("error", err.Error()))
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newTasksCommand(a),
		newImportCommand(a),
	)

	return rootCmd
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// openServices connects to the database, makes sure the chart of accounts exists and
// builds the service container. The returned func closes the pool.
func (a *app) openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.cfg.DBMaxConns, a.cfg.EnableDBCheck)
	if err != nil {
		a.logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return nil, nil, err
	}
	closePool := func() { database.ClosePgxPool(pool) }
	a.logger.Info("Database connection pool established.")

	container := a.buildContainer(pool)
	if err := container.Accounts.EnsureDefaults(ctx); err != nil {
		closePool()
		a.logger.Error("Failed to ensure default chart of accounts", slog.String("error", err.Error()))
		return nil, nil, err
	}
	return container, closePool, nil
}

func (a *app) buildContainer(pool *pgxpool.Pool) *portssvc.ServiceContainer {
	notifier := notifications.New(a.logger, a.cfg.TelegramBotToken, a.cfg.TelegramAlertChatID)
	return coresvc.NewServiceContainer(a.cfg, pgsql.NewRepositoryProvider(pool), notifier)
}
