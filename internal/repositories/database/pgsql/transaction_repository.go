package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/SscSPs/retail_finance_core/internal/models"
)

type PgxExpenseRepository struct {
	BaseRepository
}

type PgxIncomeRepository struct {
	BaseRepository
}

var (
	_ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)
	_ portsrepo.IncomeRepositoryFacade  = (*PgxIncomeRepository)(nil)
)

// dateRangeQuery appends optional inclusive bounds on column and a limit to base.
func dateRangeQuery(base, column string, filter domain.DateRangeFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.From != nil {
		args = append(args, domain.DateOnly(*filter.From))
		conds = append(conds, column+" >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, domain.DateOnly(*filter.To))
		conds = append(conds, column+" <= $"+strconv.Itoa(len(args)))
	}
	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + column + " DESC, created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	return query + ";", args
}

const expenseColumns = `expense_id, category, description, vendor, amount, payment_method, expense_date, linked_journal_entry_id, created_at, created_by`

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := models.FromDomainExpense(expense)
	query := `INSERT INTO expenses (` + expenseColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.DB.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Description,
		m.Vendor,
		m.Amount,
		m.PaymentMethod,
		m.ExpenseDate,
		m.LinkedJournalEntryID,
		m.CreatedAt,
		m.CreatedBy,
	)
	return mapWriteError(err, "insert expense "+m.ExpenseID)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	var m models.Expense
	err := r.DB.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID, &m.Category, &m.Description, &m.Vendor, &m.Amount,
		&m.PaymentMethod, &m.ExpenseDate, &m.LinkedJournalEntryID, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, "expense", expenseID)
	}
	e := m.ToDomain()
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Expense, error) {
	query, args := dateRangeQuery(`SELECT `+expenseColumns+` FROM expenses`, "expense_date", filter)
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, "list expenses")
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID, &m.Category, &m.Description, &m.Vendor, &m.Amount,
			&m.PaymentMethod, &m.ExpenseDate, &m.LinkedJournalEntryID, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate expenses")
	}
	return expenses, nil
}

const incomeColumns = `income_id, source, description, amount, payment_method, income_date, linked_journal_entry_id, created_at`

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := models.FromDomainIncome(income)
	query := `INSERT INTO incomes (` + incomeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.DB.Exec(ctx, query,
		m.IncomeID,
		m.Source,
		m.Description,
		m.Amount,
		m.PaymentMethod,
		m.IncomeDate,
		m.LinkedJournalEntryID,
		m.CreatedAt,
	)
	return mapWriteError(err, "insert income "+m.IncomeID)
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = $1;`
	var m models.Income
	err := r.DB.QueryRow(ctx, query, incomeID).Scan(
		&m.IncomeID, &m.Source, &m.Description, &m.Amount,
		&m.PaymentMethod, &m.IncomeDate, &m.LinkedJournalEntryID, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapReadError(err, "income", incomeID)
	}
	i := m.ToDomain()
	return &i, nil
}

func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Income, error) {
	query, args := dateRangeQuery(`SELECT `+incomeColumns+` FROM incomes`, "income_date", filter)
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, "list incomes")
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		var m models.Income
		if err := rows.Scan(
			&m.IncomeID, &m.Source, &m.Description, &m.Amount,
			&m.PaymentMethod, &m.IncomeDate, &m.LinkedJournalEntryID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate incomes")
	}
	return incomes, nil
}
