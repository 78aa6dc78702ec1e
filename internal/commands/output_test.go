package commands

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/SscSPs/retail_finance_core/internal/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	alert := domain.LowCashAlert{IsLowCash: true, CurrentCashBalance: decimal.RequireFromString("3000.00"), Threshold: decimal.NewFromInt(5000)}

	require.NoError(t, writeOutput(&buf, outputJSON, alert))
	assert.Contains(t, buf.String(), `"isLowCash": true`)
	assert.Contains(t, buf.String(), `"currentCashBalance": "3000"`)
}

func TestWriteOutput_YAMLKeepsFieldNamesAndOrder(t *testing.T) {
	var buf bytes.Buffer
	result := importer.Result{
		Rows:       2,
		Recorded:   1,
		ExpenseIDs: []string{"exp-1"},
		Failed:     []importer.RowError{{Line: 3, Error: "invalid date"}},
	}

	require.NoError(t, writeOutput(&buf, outputYAML, result))
	want := `dryRun: false
rows: 2
recorded: 1
expenseIDs:
  - exp-1
failed:
  - line: 3
    error: invalid date
`
	assert.Equal(t, want, buf.String())
}

func TestWriteOutput_YAMLDates(t *testing.T) {
	var buf bytes.Buffer
	run := domain.PayrollRunResult{
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Created:     []domain.Payroll{},
		Skipped:     []string{"emp-2"},
	}

	require.NoError(t, writeOutput(&buf, outputYAML, run))
	assert.Contains(t, buf.String(), "periodStart: \"2026-03-01T00:00:00Z\"")
	assert.Contains(t, buf.String(), "skippedEmployeeIDs:\n  - emp-2\n")
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	err := writeOutput(&bytes.Buffer{}, "xml", struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestNewRootCommand_RegistersSubcommands(t *testing.T) {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"serve"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"tasks", "payroll"},
		{"tasks", "pnl-snapshot"},
		{"tasks", "overdue"},
		{"tasks", "low-cash"},
		{"import", "expenses"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
