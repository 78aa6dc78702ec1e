package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
)

// recorderService turns expense and income events into ledger postings and cash movements.
type recorderService struct {
	BaseService
	provider portsrepo.RepositoryProvider
}

// NewRecorderService creates a new RecorderSvcFacade.
func NewRecorderService(provider portsrepo.RepositoryProvider, opts ...Option) portssvc.RecorderSvcFacade {
	return &recorderService{
		BaseService: newBaseService(opts...),
		provider:    provider,
	}
}

var _ portssvc.RecorderSvcFacade = (*recorderService)(nil)

func validateRecordCommand(kind, label, paymentMethod string, amountErr error, dateMissing bool) error {
	if strings.TrimSpace(label) == "" {
		return validationError("%s is required", kind)
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return validationError("payment method is required")
	}
	if dateMissing {
		return validationError("date is required")
	}
	return amountErr
}

// RecordExpense posts [Dr operating expense, Cr cash or bank] and stores the expense with its cash outflow.
func (s *recorderService) RecordExpense(ctx context.Context, actor domain.Actor, cmd domain.RecordExpenseCommand) (*domain.Expense, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	cmd.Category = strings.TrimSpace(cmd.Category)
	cmd.PaymentMethod = strings.TrimSpace(cmd.PaymentMethod)
	if err := validateRecordCommand("category", cmd.Category, cmd.PaymentMethod,
		accounting.ValidatePositiveAmount("amount", cmd.Amount), cmd.ExpenseDate.IsZero()); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf("Expense %s", cmd.Category)
	}
	now := s.now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		Category:      cmd.Category,
		Description:   description,
		Vendor:        strings.TrimSpace(cmd.Vendor),
		Amount:        cmd.Amount,
		PaymentMethod: cmd.PaymentMethod,
		ExpenseDate:   domain.DateOnly(cmd.ExpenseDate),
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: actor.UserID},
	}
	paymentCode := domain.PaymentAccountCode(cmd.PaymentMethod)

	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if _, err := ensureDefaultAccounts(ctx, repos.Accounts()); err != nil {
			return err
		}
		resolver := newAccountResolver(repos.Accounts())
		entry, err := postEntry(ctx, repos, resolver, postRequest{
			entry: domain.NewJournalEntry{
				EntryDate:     expense.ExpenseDate,
				Description:   description,
				ReferenceType: domain.RefExpense,
				ReferenceID:   expense.ExpenseID,
				Lines:         accounting.TwoLegs(domain.CodeOperatingExpense, paymentCode, cmd.Amount),
			},
			createdBy: actor.UserID,
			createdAt: now,
		})
		if err != nil {
			return err
		}
		expense.LinkedJournalEntryID = entry.EntryID

		if err := repos.Expenses().SaveExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
		if err := recordCash(ctx, repos, resolver, paymentCode, domain.Outflow, domain.CashRefExpense, expense.ExpenseID, cmd.Amount, now); err != nil {
			return err
		}
		return appendAudit(ctx, repos, domain.AuditRecordExpense, "expense", expense.ExpenseID, actor.UserID, now,
			map[string]any{"amount": cmd.Amount.String(), "category": cmd.Category, "journal_entry_id": entry.EntryID})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record expense", slog.String("category", cmd.Category))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// RecordIncome posts [Dr cash or bank, Cr revenue] and stores the income with its cash inflow.
func (s *recorderService) RecordIncome(ctx context.Context, actor domain.Actor, cmd domain.RecordIncomeCommand) (*domain.Income, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	cmd.Source = strings.TrimSpace(cmd.Source)
	cmd.PaymentMethod = strings.TrimSpace(cmd.PaymentMethod)
	if err := validateRecordCommand("source", cmd.Source, cmd.PaymentMethod,
		accounting.ValidatePositiveAmount("amount", cmd.Amount), cmd.IncomeDate.IsZero()); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf("Income %s", cmd.Source)
	}
	now := s.now()
	income := domain.Income{
		IncomeID:      uuid.NewString(),
		Source:        cmd.Source,
		Description:   description,
		Amount:        cmd.Amount,
		PaymentMethod: cmd.PaymentMethod,
		IncomeDate:    domain.DateOnly(cmd.IncomeDate),
		CreatedAt:     now,
	}
	paymentCode := domain.PaymentAccountCode(cmd.PaymentMethod)

	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if _, err := ensureDefaultAccounts(ctx, repos.Accounts()); err != nil {
			return err
		}
		resolver := newAccountResolver(repos.Accounts())
		entry, err := postEntry(ctx, repos, resolver, postRequest{
			entry: domain.NewJournalEntry{
				EntryDate:     income.IncomeDate,
				Description:   description,
				ReferenceType: domain.RefIncome,
				ReferenceID:   income.IncomeID,
				Lines:         accounting.TwoLegs(paymentCode, domain.CodeRevenue, cmd.Amount),
			},
			createdBy: actor.UserID,
			createdAt: now,
		})
		if err != nil {
			return err
		}
		income.LinkedJournalEntryID = entry.EntryID

		if err := repos.Incomes().SaveIncome(ctx, income); err != nil {
			return fmt.Errorf("failed to save income: %w", err)
		}
		if err := recordCash(ctx, repos, resolver, paymentCode, domain.Inflow, domain.CashRefIncome, income.IncomeID, cmd.Amount, now); err != nil {
			return err
		}
		return appendAudit(ctx, repos, domain.AuditRecordIncome, "income", income.IncomeID, actor.UserID, now,
			map[string]any{"amount": cmd.Amount.String(), "source": cmd.Source, "journal_entry_id": entry.EntryID})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record income", slog.String("source", cmd.Source))
		return nil, err
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("income_id", income.IncomeID),
		slog.String("amount", income.Amount.String()))
	return &income, nil
}

func (s *recorderService) GetExpense(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Expenses().FindExpenseByID(ctx, expenseID)
}

func (s *recorderService) ListExpenses(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Expense, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Expenses().ListExpenses(ctx, normalizeFilter(filter))
}

func (s *recorderService) GetIncome(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Incomes().FindIncomeByID(ctx, incomeID)
}

func (s *recorderService) ListIncomes(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Income, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Incomes().ListIncomes(ctx, normalizeFilter(filter))
}

func normalizeFilter(filter domain.DateRangeFilter) domain.DateRangeFilter {
	if filter.Limit <= 0 || filter.Limit > maxEntryPageSize {
		filter.Limit = maxEntryPageSize
	}
	return filter
}
