package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) sum(ctx context.Context, action, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, mapWriteError(err, action)
	}
	return total, nil
}

// SumCashTransactions compares instants against the day bounds of from and to in their own
// location, so movements land on the business calendar date.
func (r *reportingRepository) SumCashTransactions(ctx context.Context, direction domain.CashDirection, refs []domain.CashReferenceType, from, to time.Time) (decimal.Decimal, error) {
	refStrings := make([]string, 0, len(refs))
	for _, ref := range refs {
		refStrings = append(refStrings, string(ref))
	}
	start := domain.DateOnly(from)
	end := domain.DateOnly(to).AddDate(0, 0, 1)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM cash_transactions
		WHERE direction = $1
			AND reference_type = ANY($2)
			AND created_at >= $3
			AND created_at < $4;
	`
	return r.sum(ctx, "sum cash transactions", query, string(direction), refStrings, start, end)
}

func (r *reportingRepository) NetCreditByAccountCode(ctx context.Context, from, to time.Time) (map[domain.AccountCode]decimal.Decimal, error) {
	query := `
		SELECT a.code, COALESCE(SUM(l.credit - l.debit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.entry_date BETWEEN $1 AND $2
		GROUP BY a.code;
	`
	rows, err := r.DB.Query(ctx, query, from, to)
	if err != nil {
		return nil, mapWriteError(err, "sum lines by account code")
	}
	defer rows.Close()

	result := map[domain.AccountCode]decimal.Decimal{}
	for rows.Next() {
		var code string
		var net decimal.Decimal
		if err := rows.Scan(&code, &net); err != nil {
			return nil, fmt.Errorf("error scanning account totals: %w", err)
		}
		result[domain.AccountCode(code)] = net
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate account totals")
	}
	return result, nil
}

func (r *reportingRepository) NetDebitByAccountType(ctx context.Context, asOf time.Time) (map[domain.AccountType]decimal.Decimal, error) {
	query := `
		SELECT a.account_type, COALESCE(SUM(l.debit - l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.entry_date <= $1
		GROUP BY a.account_type;
	`
	rows, err := r.DB.Query(ctx, query, asOf)
	if err != nil {
		return nil, mapWriteError(err, "sum lines by account type")
	}
	defer rows.Close()

	result := map[domain.AccountType]decimal.Decimal{}
	for rows.Next() {
		var accountType string
		var net decimal.Decimal
		if err := rows.Scan(&accountType, &net); err != nil {
			return nil, fmt.Errorf("error scanning account type totals: %w", err)
		}
		result[domain.AccountType(accountType)] = net
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate account type totals")
	}
	return result, nil
}

func (r *reportingRepository) AccountBalances(ctx context.Context, codes []domain.AccountCode) (map[domain.AccountCode]decimal.Decimal, error) {
	codeStrings := make([]string, 0, len(codes))
	result := make(map[domain.AccountCode]decimal.Decimal, len(codes))
	for _, c := range codes {
		codeStrings = append(codeStrings, string(c))
		result[c] = decimal.Zero
	}

	query := `
		SELECT a.code, COALESCE(SUM(l.debit - l.credit), 0)
		FROM accounts a
		LEFT JOIN journal_lines l ON l.account_id = a.account_id
		WHERE a.code = ANY($1)
		GROUP BY a.code;
	`
	rows, err := r.DB.Query(ctx, query, codeStrings)
	if err != nil {
		return nil, mapWriteError(err, "query account balances")
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var balance decimal.Decimal
		if err := rows.Scan(&code, &balance); err != nil {
			return nil, fmt.Errorf("error scanning account balance: %w", err)
		}
		result[domain.AccountCode(code)] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate account balances")
	}
	return result, nil
}

func (r *reportingRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE expense_date BETWEEN $1 AND $2;`
	return r.sum(ctx, "sum expenses", query, from, to)
}

func (r *reportingRepository) SumIncome(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE income_date BETWEEN $1 AND $2;`
	return r.sum(ctx, "sum income", query, from, to)
}

func (r *reportingRepository) SumUnpaidPayrollDue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(net_salary), 0)
		FROM payrolls
		WHERE payment_status <> 'paid' AND period_end BETWEEN $1 AND $2;
	`
	return r.sum(ctx, "sum unpaid payroll", query, from, to)
}
