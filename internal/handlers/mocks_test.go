package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChartOfAccountsSvc ---
type MockAccountsService struct {
	mock.Mock
}

func (m *MockAccountsService) EnsureDefaults(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockAccountsService) Lookup(ctx context.Context, code domain.AccountCode) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountsService) ListAccounts(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock LedgerSvcFacade ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, actor domain.Actor, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, actor, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}
func (m *MockLedgerService) CreateBalancedEntry(ctx context.Context, actor domain.Actor, req domain.NewJournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) Reverse(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock RecorderSvcFacade ---
type MockRecorderService struct {
	mock.Mock
}

func (m *MockRecorderService) RecordExpense(ctx context.Context, actor domain.Actor, cmd domain.RecordExpenseCommand) (*domain.Expense, error) {
	args := m.Called(ctx, actor, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockRecorderService) GetExpense(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, actor, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockRecorderService) ListExpenses(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockRecorderService) RecordIncome(ctx context.Context, actor domain.Actor, cmd domain.RecordIncomeCommand) (*domain.Income, error) {
	args := m.Called(ctx, actor, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockRecorderService) GetIncome(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, actor, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockRecorderService) ListIncomes(ctx context.Context, actor domain.Actor, filter domain.DateRangeFilter) ([]domain.Income, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

// --- Mock PayrollSvcFacade ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) CreateEmployee(ctx context.Context, actor domain.Actor, cmd domain.CreateEmployeeCommand) (*domain.Employee, error) {
	args := m.Called(ctx, actor, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockPayrollService) GetEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, actor, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockPayrollService) ListEmployees(ctx context.Context, actor domain.Actor, status *domain.EmploymentStatus) ([]domain.Employee, error) {
	args := m.Called(ctx, actor, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockPayrollService) AccruePayroll(ctx context.Context, actor domain.Actor, cmd domain.AccruePayrollCommand) (*domain.Payroll, error) {
	args := m.Called(ctx, actor, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) ApproveAndPay(ctx context.Context, actor domain.Actor, payrollID, otpCode string) (*domain.Payroll, error) {
	args := m.Called(ctx, actor, payrollID, otpCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) GetPayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, actor, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) ListPayrolls(ctx context.Context, actor domain.Actor, status *domain.PaymentStatus) ([]domain.Payroll, error) {
	args := m.Called(ctx, actor, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

// --- Mock ReportingSvc ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Cashflow(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CashflowReport, error) {
	args := m.Called(ctx, actor, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashflowReport), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	args := m.Called(ctx, actor, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLossReport), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, actor, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}
func (m *MockReportingService) DashboardSummary(ctx context.Context, actor domain.Actor) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}
func (m *MockReportingService) CurrentCashBalance(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ScheduledTasksSvc ---
type MockTasksService struct {
	mock.Mock
}

func (m *MockTasksService) GenerateMonthlyPayroll(ctx context.Context) (*domain.PayrollRunResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRunResult), args.Error(1)
}
func (m *MockTasksService) SnapshotMonthlyProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLossReport), args.Error(1)
}
func (m *MockTasksService) ListOverdueReceivables(ctx context.Context) ([]domain.OverdueInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverdueInvoice), args.Error(1)
}
func (m *MockTasksService) CheckLowCash(ctx context.Context, threshold *decimal.Decimal) (*domain.LowCashAlert, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LowCashAlert), args.Error(1)
}

// --- Mock CapabilityAuthorizerSvc ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, actor domain.Actor, capability domain.Capability) error {
	return m.Called(ctx, actor, capability).Error(0)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.ChartOfAccountsSvc      = (*MockAccountsService)(nil)
	_ portssvc.LedgerSvcFacade         = (*MockLedgerService)(nil)
	_ portssvc.RecorderSvcFacade       = (*MockRecorderService)(nil)
	_ portssvc.PayrollSvcFacade        = (*MockPayrollService)(nil)
	_ portssvc.ReportingSvc            = (*MockReportingService)(nil)
	_ portssvc.ScheduledTasksSvc       = (*MockTasksService)(nil)
	_ portssvc.CapabilityAuthorizerSvc = (*MockAuthorizer)(nil)
)
