package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) InsertAccountsIfAbsent(ctx context.Context, accounts []domain.Account) (int, error) {
	args := m.Called(ctx, accounts)
	return args.Int(0), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

var _ portsrepo.IncomeRepositoryFacade = (*MockIncomeRepository)(nil)

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomes(ctx context.Context, filter domain.DateRangeFilter) ([]domain.Income, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, status *domain.EmploymentStatus) ([]domain.Employee, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepositoryFacade = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) ListPayrolls(ctx context.Context, status *domain.PaymentStatus) ([]domain.Payroll, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, periodStart, periodEnd)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindPayrollByIDForUpdate(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) MarkPaid(ctx context.Context, payrollID, approvedBy string, approvedAt time.Time) error {
	args := m.Called(ctx, payrollID, approvedBy, approvedAt)
	return args.Error(0)
}

// --- Mock CashTransactionRepository ---
type MockCashTransactionRepository struct {
	mock.Mock
}

func (m *MockCashTransactionRepository) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock InvoiceReader ---
type MockInvoiceReader struct {
	mock.Mock
}

func (m *MockInvoiceReader) ListOverdueInvoices(ctx context.Context, asOf time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumCashTransactions(ctx context.Context, direction domain.CashDirection, refs []domain.CashReferenceType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, direction, refs, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) NetCreditByAccountCode(ctx context.Context, from, to time.Time) (map[domain.AccountCode]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountCode]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) NetDebitByAccountType(ctx context.Context, asOf time.Time) (map[domain.AccountType]decimal.Decimal, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountType]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) AccountBalances(ctx context.Context, codes []domain.AccountCode) (map[domain.AccountCode]decimal.Decimal, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountCode]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumIncome(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumUnpaidPayrollDue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// mockRepos wires the mocks behind the Repositories interface.
type mockRepos struct {
	accounts  *MockAccountRepository
	journals  *MockJournalRepository
	expenses  *MockExpenseRepository
	incomes   *MockIncomeRepository
	employees *MockEmployeeRepository
	payrolls  *MockPayrollRepository
	cash      *MockCashTransactionRepository
	audit     *MockAuditLogRepository
	invoices  *MockInvoiceReader
	reports   *MockReportingRepository
}

var _ portsrepo.Repositories = (*mockRepos)(nil)

func newMockRepos() *mockRepos {
	return &mockRepos{
		accounts:  new(MockAccountRepository),
		journals:  new(MockJournalRepository),
		expenses:  new(MockExpenseRepository),
		incomes:   new(MockIncomeRepository),
		employees: new(MockEmployeeRepository),
		payrolls:  new(MockPayrollRepository),
		cash:      new(MockCashTransactionRepository),
		audit:     new(MockAuditLogRepository),
		invoices:  new(MockInvoiceReader),
		reports:   new(MockReportingRepository),
	}
}

func (r *mockRepos) Accounts() portsrepo.AccountRepositoryFacade { return r.accounts }
func (r *mockRepos) Journals() portsrepo.JournalRepositoryFacade { return r.journals }
func (r *mockRepos) Expenses() portsrepo.ExpenseRepositoryFacade { return r.expenses }
func (r *mockRepos) Incomes() portsrepo.IncomeRepositoryFacade { return r.incomes }
func (r *mockRepos) Employees() portsrepo.EmployeeRepositoryFacade { return r.employees }
func (r *mockRepos) Payrolls() portsrepo.PayrollRepositoryFacade { return r.payrolls }
func (r *mockRepos) CashTransactions() portsrepo.CashTransactionRepository { return r.cash }
func (r *mockRepos) AuditLogs() portsrepo.AuditLogRepository { return r.audit }
func (r *mockRepos) Invoices() portsrepo.InvoiceReader { return r.invoices }
func (r *mockRepos) Reports() portsrepo.ReportingRepository { return r.reports }

func (r *mockRepos) assertExpectations(t mock.TestingT) {
	r.accounts.AssertExpectations(t)
	r.journals.AssertExpectations(t)
	r.expenses.AssertExpectations(t)
	r.incomes.AssertExpectations(t)
	r.employees.AssertExpectations(t)
	r.payrolls.AssertExpectations(t)
	r.cash.AssertExpectations(t)
	r.audit.AssertExpectations(t)
	r.invoices.AssertExpectations(t)
	r.reports.AssertExpectations(t)
}

// fakeTxManager runs each unit of work directly against the mocks and counts outcomes.
type fakeTxManager struct {
	repos     portsrepo.Repositories
	commits   int
	rollbacks int
	readTxs   int
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := fn(ctx, f.repos); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func (f *fakeTxManager) WithinReadTx(ctx context.Context, fn portsrepo.TxFunc) error {
	f.readTxs++
	return fn(ctx, f.repos)
}

// --- Mock ApprovalCodeVerifier ---
type MockApprovalCodeVerifier struct {
	mock.Mock
}

var _ portssvc.ApprovalCodeVerifier = (*MockApprovalCodeVerifier)(nil)

func (m *MockApprovalCodeVerifier) Verify(ctx context.Context, code string) bool {
	args := m.Called(ctx, code)
	return args.Bool(0)
}

// allowAll grants every capability.
type allowAll struct{}

func (allowAll) Authorize(context.Context, domain.Actor, domain.Capability) error { return nil }

// chart returns the default accounts with stable ids.
func chart() map[domain.AccountCode]*domain.Account {
	out := make(map[domain.AccountCode]*domain.Account)
	for _, acc := range domain.DefaultChart() {
		a := acc
		a.AccountID = "acc-" + string(acc.Code)
		out[acc.Code] = &a
	}
	return out
}

// expectChart makes every default code resolvable.
func expectChart(repo *MockAccountRepository) {
	for code, acc := range chart() {
		repo.On("FindAccountByCode", mock.Anything, code).Return(acc, nil).Maybe()
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
