package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// ExpenseRecorderSvc records money spent.
type ExpenseRecorderSvc interface {
	RecordExpense(ctx context.Context, actor domain.Actor, cmd domain.RecordExpenseCommand) (*domain.Expense, error)
	GetExpense(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Expense, error)
}

// IncomeRecorderSvc records money received.
type IncomeRecorderSvc interface {
	RecordIncome(ctx context.Context, actor domain.Actor, cmd domain.RecordIncomeCommand) (*domain.Income, error)
	GetIncome(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Income, error)
}

// RecorderSvcFacade combines the expense and income recorders.
type RecorderSvcFacade interface {
	ExpenseRecorderSvc
	IncomeRecorderSvc
}
