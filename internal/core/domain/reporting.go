package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowReport splits net cash movement over a window into activity buckets.
// Investing and financing are reserved and always zero.
type CashflowReport struct {
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	OperatingCashflow decimal.Decimal `json:"operatingCashflow"`
	InvestingCashflow decimal.Decimal `json:"investingCashflow"`
	FinancingCashflow decimal.Decimal `json:"financingCashflow"`
	NetCashflow       decimal.Decimal `json:"netCashflow"`
}

// ProfitAndLossReport summarises earnings over a window from ledger lines.
type ProfitAndLossReport struct {
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	SalaryExpense     decimal.Decimal `json:"salaryExpense"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport shows balances by account type as of a date.
type BalanceSheetReport struct {
	AsOf        time.Time       `json:"asOf"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// Imbalance is assets - liabilities - equity. It is zero once all earnings are closed to equity.
func (r BalanceSheetReport) Imbalance() decimal.Decimal {
	return r.Assets.Sub(r.Liabilities).Sub(r.Equity)
}

// DashboardSummary is the consolidated month-to-date finance view.
type DashboardSummary struct {
	CurrentCashBalance          decimal.Decimal `json:"currentCashBalance"`
	TotalReceivables            decimal.Decimal `json:"totalReceivables"`
	TotalPayables               decimal.Decimal `json:"totalPayables"`
	MonthlyBurnRate             decimal.Decimal `json:"monthlyBurnRate"`
	NetOperatingCashflow        decimal.Decimal `json:"netOperatingCashflow"`
	SalaryObligationsNext30Days decimal.Decimal `json:"salaryObligationsNext30Days"`
	RevenueThisMonth            decimal.Decimal `json:"revenueThisMonth"`
	ExpensesThisMonth           decimal.Decimal `json:"expensesThisMonth"`
	NetProfitThisMonth          decimal.Decimal `json:"netProfitThisMonth"`
}

// LowCashAlert is the outcome of a low-cash check.
type LowCashAlert struct {
	IsLowCash          bool            `json:"isLowCash"`
	CurrentCashBalance decimal.Decimal `json:"currentCashBalance"`
	Threshold          decimal.Decimal `json:"threshold"`
}

// OverdueInvoice is a receivable past its due date and not yet paid.
type OverdueInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	DueDate       time.Time       `json:"dueDate"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// PayrollRunResult summarises a monthly payroll generation.
type PayrollRunResult struct {
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Created     []Payroll `json:"created"`
	Skipped     []string  `json:"skippedEmployeeIDs"`
}
