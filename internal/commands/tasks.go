package commands

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type taskRunner func(ctx context.Context, tasks portssvc.ScheduledTasksSvc) (any, error)

func newTasksCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Run a scheduled finance task once",
		Long: "Runs one of the periodic finance jobs as the configured system actor.\n" +
			"Meant to be triggered by cron or a job scheduler.",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", outputJSON, "output format (json, yaml)")

	add := func(use, short string, run taskRunner) *cobra.Command {
		sub := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runTask(cmd, use, output, run)
			},
		}
		cmd.AddCommand(sub)
		return sub
	}

	add("payroll", "Accrue this month's payroll for every active employee",
		func(ctx context.Context, tasks portssvc.ScheduledTasksSvc) (any, error) {
			return tasks.GenerateMonthlyPayroll(ctx)
		})
	add("pnl-snapshot", "Compute the month-to-date profit and loss",
		func(ctx context.Context, tasks portssvc.ScheduledTasksSvc) (any, error) {
			return tasks.SnapshotMonthlyProfitAndLoss(ctx)
		})
	add("overdue", "List overdue receivables and alert on them",
		func(ctx context.Context, tasks portssvc.ScheduledTasksSvc) (any, error) {
			return tasks.ListOverdueReceivables(ctx)
		})

	var threshold string
	lowCash := add("low-cash", "Compare current cash with the low-cash threshold",
		func(ctx context.Context, tasks portssvc.ScheduledTasksSvc) (any, error) {
			var t *decimal.Decimal
			if threshold != "" {
				parsed, err := decimal.NewFromString(threshold)
				if err != nil {
					return nil, fmt.Errorf("invalid --threshold %q: %w", threshold, err)
				}
				t = &parsed
			}
			return tasks.CheckLowCash(ctx, t)
		})
	lowCash.Flags().StringVar(&threshold, "threshold", "", "override the configured LOW_CASH_THRESHOLD")

	return cmd
}

func (a *app) runTask(cmd *cobra.Command, name, output string, run taskRunner) error {
	if output != outputJSON && output != outputYAML {
		return fmt.Errorf("unsupported output format %q", output)
	}

	container, closePool, err := a.openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer closePool()

	logger := a.logger.With(slog.String("task", name))
	logger.Info("Running scheduled task")
	result, err := run(cmd.Context(), container.Tasks)
	if err != nil {
		logger.Error("Scheduled task failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Scheduled task finished")

	return writeOutput(cmd.OutOrStdout(), output, result)
}
