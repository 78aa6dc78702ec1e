package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository aggregates ledger lines, cash movements and domain tables.
// Date bounds are inclusive calendar dates.
type ReportingRepository interface {
	// SumCashTransactions sums amounts of one direction whose reference type is in refs,
	// by the calendar date the movement was recorded.
	SumCashTransactions(ctx context.Context, direction domain.CashDirection, refs []domain.CashReferenceType, from, to time.Time) (decimal.Decimal, error)

	// NetCreditByAccountCode returns Σ(credit - debit) per account code for entries dated in the window.
	NetCreditByAccountCode(ctx context.Context, from, to time.Time) (map[domain.AccountCode]decimal.Decimal, error)

	// NetDebitByAccountType returns Σ(debit - credit) per account type for entries dated on or before asOf.
	NetDebitByAccountType(ctx context.Context, asOf time.Time) (map[domain.AccountType]decimal.Decimal, error)

	// AccountBalances returns Σdebit - Σcredit over all lines for each code. Missing codes map to zero.
	AccountBalances(ctx context.Context, codes []domain.AccountCode) (map[domain.AccountCode]decimal.Decimal, error)

	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumIncome(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumUnpaidPayrollDue sums net salary of payrolls not yet paid whose period ends in the window.
	SumUnpaidPayrollDue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
