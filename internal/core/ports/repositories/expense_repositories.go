package repositories

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// ExpenseRepositoryFacade persists expenses.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Expense, error)
}

// IncomeRepositoryFacade persists incomes.
type IncomeRepositoryFacade interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Income, error)
}
