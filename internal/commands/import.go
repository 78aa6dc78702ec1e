package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/SscSPs/retail_finance_core/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-load finance records from CSV",
	}
	cmd.AddCommand(newImportExpensesCommand(a))
	return cmd
}

func newImportExpensesCommand(a *app) *cobra.Command {
	var (
		file   string
		dryRun bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Record expenses from a CSV file",
		Long: "Reads a CSV with the columns date,category,description,vendor,amount,payment_method\n" +
			"and records every valid row as an expense on behalf of the system actor.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("unsupported output format %q", output)
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %s: %w", file, err)
			}
			defer f.Close()

			container, closePool, err := a.openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closePool()

			actor := domain.Actor{UserID: a.cfg.SystemActorID, Roles: a.cfg.FinanceWriteRoles}
			logger := a.logger.With(slog.String("file", file), slog.Bool("dry_run", dryRun))
			imp := importer.NewExpenseImporter(container.Recorders, actor, a.cfg.BusinessLocation, logger)

			result, err := imp.Import(cmd.Context(), f, dryRun)
			if result != nil {
				if werr := writeOutput(cmd.OutOrStdout(), output, result); werr != nil {
					return werr
				}
			}
			if err != nil {
				logger.Error("Expense import aborted", slog.String("error", err.Error()))
				return err
			}
			if len(result.Failed) > 0 {
				return fmt.Errorf("%d of %d rows were not recorded", len(result.Failed), result.Rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate rows without recording them")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json, yaml)")

	return cmd
}
