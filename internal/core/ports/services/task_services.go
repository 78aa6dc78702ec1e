package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScheduledTasksSvc holds the periodic finance jobs. Each runs as the configured system actor.
type ScheduledTasksSvc interface {
	GenerateMonthlyPayroll(ctx context.Context) (*domain.PayrollRunResult, error)
	SnapshotMonthlyProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error)
	ListOverdueReceivables(ctx context.Context) ([]domain.OverdueInvoice, error)

	// CheckLowCash compares current cash with threshold, or with the configured default when nil.
	CheckLowCash(ctx context.Context, threshold *decimal.Decimal) (*domain.LowCashAlert, error)
}

//go:generate mockgen -destination=mocks/mock_task_services.go -package=mocks . AlertNotifier

// AlertNotifier delivers operational finance alerts to people.
type AlertNotifier interface {
	Notify(ctx context.Context, subject, body string) error
}
