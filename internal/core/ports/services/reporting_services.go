package services

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_reporting_services.go -package=mocks . ReportingSvc

// ReportingSvc defines operations for generating financial reports. Bounds are inclusive dates.
type ReportingSvc interface {
	Cashflow(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CashflowReport, error)
	ProfitAndLoss(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.BalanceSheetReport, error)
	DashboardSummary(ctx context.Context, actor domain.Actor) (*domain.DashboardSummary, error)

	// CurrentCashBalance is the combined cash and bank balance.
	CurrentCashBalance(ctx context.Context, actor domain.Actor) (decimal.Decimal, error)
}
