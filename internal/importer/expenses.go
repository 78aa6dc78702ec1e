// Package importer loads bulk finance records from spreadsheet exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Expense CSV columns. Header names are matched case-insensitively.
const (
	colDate          = "date"
	colCategory      = "category"
	colDescription   = "description"
	colVendor        = "vendor"
	colAmount        = "amount"
	colPaymentMethod = "payment_method"
)

var requiredExpenseCols = []string{colDate, colCategory, colAmount, colPaymentMethod}

// ErrMissingColumns means the header row lacks a required column.
var ErrMissingColumns = fmt.Errorf("%w: csv header is missing required columns", apperrors.ErrValidation)

// ExpenseRow is one parsed CSV record. Line is the 1-based file line it starts on.
type ExpenseRow struct {
	Line    int
	Command domain.RecordExpenseCommand
}

// RowError reports a line that could not be parsed or recorded.
type RowError struct {
	Line  int    `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

// Result summarises an import run.
type Result struct {
	DryRun     bool       `json:"dryRun" yaml:"dry_run"`
	Rows       int        `json:"rows" yaml:"rows"`
	Recorded   int        `json:"recorded" yaml:"recorded"`
	ExpenseIDs []string   `json:"expenseIDs,omitempty" yaml:"expense_ids,omitempty"`
	Failed     []RowError `json:"failed,omitempty" yaml:"failed,omitempty"`
}

type colIndex map[string]int

// ParseExpenses reads an expense CSV. Rows that fail to parse are returned as RowErrors
// so one bad line does not hide the others.
func ParseExpenses(r io.Reader, loc *time.Location) ([]ExpenseRow, []RowError, error) {
	if loc == nil {
		loc = time.UTC
	}
	utf8r, err := NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(colIndex, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredExpenseCols {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows []ExpenseRow
	var failed []RowError
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		cmd, err := parseExpenseRecord(cols, record, loc)
		if err != nil {
			failed = append(failed, RowError{Line: line, Error: err.Error()})
			continue
		}
		rows = append(rows, ExpenseRow{Line: line, Command: cmd})
	}

	return rows, failed, nil
}

func parseExpenseRecord(cols colIndex, record []string, loc *time.Location) (domain.RecordExpenseCommand, error) {
	date, err := time.ParseInLocation(domain.DateLayout, cols.value(record, colDate), loc)
	if err != nil {
		return domain.RecordExpenseCommand{}, fmt.Errorf("invalid date %q", cols.value(record, colDate))
	}
	amount, err := decimal.NewFromString(cols.value(record, colAmount))
	if err != nil {
		return domain.RecordExpenseCommand{}, fmt.Errorf("invalid amount %q", cols.value(record, colAmount))
	}
	if err := accounting.ValidatePositiveAmount("amount", amount); err != nil {
		return domain.RecordExpenseCommand{}, err
	}

	cmd := domain.RecordExpenseCommand{
		Category:      cols.value(record, colCategory),
		Description:   cols.value(record, colDescription),
		Vendor:        cols.value(record, colVendor),
		Amount:        amount,
		PaymentMethod: strings.ToLower(cols.value(record, colPaymentMethod)),
		ExpenseDate:   date,
	}
	if cmd.Category == "" {
		return domain.RecordExpenseCommand{}, errors.New("category is required")
	}
	if cmd.PaymentMethod == "" {
		return domain.RecordExpenseCommand{}, errors.New("payment_method is required")
	}
	return cmd, nil
}

func (c colIndex) value(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ExpenseImporter records parsed CSV rows through the expense recorder.
type ExpenseImporter struct {
	recorder portssvc.ExpenseRecorderSvc
	actor    domain.Actor
	loc      *time.Location
	logger   *slog.Logger
}

// NewExpenseImporter creates an importer that records every row as actor.
func NewExpenseImporter(recorder portssvc.ExpenseRecorderSvc, actor domain.Actor, loc *time.Location, logger *slog.Logger) *ExpenseImporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseImporter{recorder: recorder, actor: actor, loc: loc, logger: logger}
}

// Import parses r and records each valid row. With dryRun set nothing is recorded.
// A retryable store failure stops the run so the caller can retry the remaining rows.
func (i *ExpenseImporter) Import(ctx context.Context, r io.Reader, dryRun bool) (*Result, error) {
	rows, failed, err := ParseExpenses(r, i.loc)
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: dryRun, Rows: len(rows) + len(failed), Failed: failed}
	if dryRun {
		i.logger.Info("Expense import validated", slog.Int("rows", result.Rows), slog.Int("invalid", len(failed)))
		return result, nil
	}

	for _, row := range rows {
		expense, err := i.recorder.RecordExpense(ctx, i.actor, row.Command)
		if err != nil {
			if apperrors.IsRetryable(err) || ctx.Err() != nil {
				return result, fmt.Errorf("line %d: %w", row.Line, err)
			}
			i.logger.Warn("Expense row rejected", slog.Int("line", row.Line), slog.String("error", err.Error()))
			result.Failed = append(result.Failed, RowError{Line: row.Line, Error: err.Error()})
			continue
		}
		result.Recorded++
		result.ExpenseIDs = append(result.ExpenseIDs, expense.ExpenseID)
	}

	i.logger.Info("Expense import finished",
		slog.Int("rows", result.Rows),
		slog.Int("recorded", result.Recorded),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}
