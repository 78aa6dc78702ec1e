package commands

import (
	"log/slog"

	"github.com/SscSPs/retail_finance_core/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	for _, direction := range []database.MigrateDirection{database.MigrateUp, database.MigrateDown} {
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: "Run all " + string(direction) + " migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.logger.Info("Running database migrations...", slog.String("direction", string(direction)))
				if err := database.RunMigrations(a.logger, a.cfg.DatabaseURL, a.cfg.MigrationsPath, direction); err != nil {
					a.logger.Error("Failed to run migrations", slog.String("error", err.Error()))
					return err
				}
				return nil
			},
		})
	}

	return cmd
}
