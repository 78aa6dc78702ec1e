package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultObligationWindowDays is how far ahead the dashboard looks for unpaid payroll.
const DefaultObligationWindowDays = 30

// reportingService implements the ReportingSvc interface. Every report reads one snapshot.
type reportingService struct {
	BaseService
	provider             portsrepo.RepositoryProvider
	obligationWindowDays int
}

// NewReportingService creates a new reporting service.
func NewReportingService(provider portsrepo.RepositoryProvider, obligationWindowDays int, opts ...Option) portssvc.ReportingSvc {
	if obligationWindowDays <= 0 {
		obligationWindowDays = DefaultObligationWindowDays
	}
	return &reportingService{
		BaseService:          newBaseService(opts...),
		provider:             provider,
		obligationWindowDays: obligationWindowDays,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return validationError("start and end dates are required")
	}
	if to.Before(from) {
		return validationError("end date %s is before start date %s", to.Format(domain.DateLayout), from.Format(domain.DateLayout))
	}
	return nil
}

func computeCashflow(ctx context.Context, repo portsrepo.ReportingRepository, from, to time.Time) (*domain.CashflowReport, error) {
	inflows, err := repo.SumCashTransactions(ctx, domain.Inflow, domain.CashflowInflowRefs, from, to)
	if err != nil {
		return nil, err
	}
	outflows, err := repo.SumCashTransactions(ctx, domain.Outflow, domain.CashflowOutflowRefs, from, to)
	if err != nil {
		return nil, err
	}

	// investing and financing activity is not classified yet
	operating := inflows.Sub(outflows)
	investing, financing := decimal.Zero, decimal.Zero
	return &domain.CashflowReport{
		StartDate:         from,
		EndDate:           to,
		OperatingCashflow: operating,
		InvestingCashflow: investing,
		FinancingCashflow: financing,
		NetCashflow:       operating.Add(investing).Add(financing),
	}, nil
}

func computeProfitAndLoss(ctx context.Context, repo portsrepo.ReportingRepository, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	sums, err := repo.NetCreditByAccountCode(ctx, from, to)
	if err != nil {
		return nil, err
	}
	revenue := sums[domain.CodeRevenue]
	cogs := sums[domain.CodeCostOfGoodsSold].Neg()
	opex := sums[domain.CodeOperatingExpense].Neg()
	salary := sums[domain.CodeSalaryExpense].Neg()
	return &domain.ProfitAndLossReport{
		StartDate:         from,
		EndDate:           to,
		Revenue:           revenue,
		COGS:              cogs,
		OperatingExpenses: opex,
		SalaryExpense:     salary,
		NetProfit:         revenue.Sub(cogs).Sub(opex).Sub(salary),
	}, nil
}

// Cashflow sums cash movements recorded in the window.
func (s *reportingService) Cashflow(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CashflowReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	var report *domain.CashflowReport
	err := s.provider.TxManager.WithinReadTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		report, err = computeCashflow(ctx, repos.Reports(), from, to)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate cashflow report")
		return nil, err
	}
	return report, nil
}

// ProfitAndLoss groups Σ(credit - debit) by account code for entries dated in the window.
func (s *reportingService) ProfitAndLoss(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	var report *domain.ProfitAndLossReport
	err := s.provider.TxManager.WithinReadTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		report, err = computeProfitAndLoss(ctx, repos.Reports(), from, to)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate profit and loss report")
		return nil, err
	}
	return report, nil
}

// BalanceSheet groups Σ(debit - credit) by account type for entries dated on or before asOf.
func (s *reportingService) BalanceSheet(ctx context.Context, actor domain.Actor, asOf time.Time) (*domain.BalanceSheetReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		return nil, validationError("as of date is required")
	}
	asOf = domain.DateOnly(asOf)

	var sums map[domain.AccountType]decimal.Decimal
	err := s.provider.TxManager.WithinReadTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		sums, err = repos.Reports().NetDebitByAccountType(ctx, asOf)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate balance sheet")
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:        asOf,
		Assets:      sums[domain.AssetType],
		Liabilities: sums[domain.LiabilityType].Neg(),
		Equity:      sums[domain.EquityType].Neg(),
	}
	if imbalance := report.Imbalance(); !imbalance.IsZero() {
		// open revenue and expense balances have not been closed into equity
		s.LogDebug(ctx, "Balance sheet does not tie out", slog.String("imbalance", imbalance.String()))
	}
	return report, nil
}

// DashboardSummary combines account balances with month-to-date figures from the expense and income tables.
func (s *reportingService) DashboardSummary(ctx context.Context, actor domain.Actor) (*domain.DashboardSummary, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	today := s.today()
	monthStart, _ := domain.MonthBounds(today)
	obligationsEnd := today.AddDate(0, 0, s.obligationWindowDays)

	summary := &domain.DashboardSummary{}
	err := s.provider.TxManager.WithinReadTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		reports := repos.Reports()
		balances, err := reports.AccountBalances(ctx, []domain.AccountCode{
			domain.CodeCash, domain.CodeBank, domain.CodeAccountsReceivable, domain.CodeAccountsPayable,
		})
		if err != nil {
			return err
		}
		revenue, err := reports.SumIncome(ctx, monthStart, today)
		if err != nil {
			return err
		}
		expenses, err := reports.SumExpenses(ctx, monthStart, today)
		if err != nil {
			return err
		}
		obligations, err := reports.SumUnpaidPayrollDue(ctx, today, obligationsEnd)
		if err != nil {
			return err
		}
		cashflow, err := computeCashflow(ctx, reports, monthStart, today)
		if err != nil {
			return err
		}

		summary.CurrentCashBalance = balances[domain.CodeCash].Add(balances[domain.CodeBank])
		summary.TotalReceivables = balances[domain.CodeAccountsReceivable]
		summary.TotalPayables = balances[domain.CodeAccountsPayable].Neg()
		summary.MonthlyBurnRate = expenses
		summary.NetOperatingCashflow = cashflow.OperatingCashflow
		summary.SalaryObligationsNext30Days = obligations
		summary.RevenueThisMonth = revenue
		summary.ExpensesThisMonth = expenses
		summary.NetProfitThisMonth = revenue.Sub(expenses)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard summary")
		return nil, err
	}
	return summary, nil
}

func (s *reportingService) CurrentCashBalance(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return decimal.Zero, err
	}
	balances, err := s.provider.Repos.Reports().AccountBalances(ctx, []domain.AccountCode{domain.CodeCash, domain.CodeBank})
	if err != nil {
		s.LogError(ctx, err, "Failed to read cash balance")
		return decimal.Zero, err
	}
	return balances[domain.CodeCash].Add(balances[domain.CodeBank]), nil
}
