package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// TaskSettings configures the periodic finance jobs.
type TaskSettings struct {
	// SystemActor is the identity every job runs as.
	SystemActor domain.Actor
	// LowCashThreshold is used when CheckLowCash is called without one.
	LowCashThreshold decimal.Decimal
}

// scheduledTasksService composes the finance services into batch jobs.
type scheduledTasksService struct {
	BaseService
	repos     portsrepo.Repositories
	accrual   portssvc.PayrollAccrualSvc
	reporting portssvc.ReportingSvc
	notifier  portssvc.AlertNotifier
	settings  TaskSettings
}

// NewScheduledTasksService creates a new ScheduledTasksSvc. notifier may be nil.
func NewScheduledTasksService(repos portsrepo.Repositories, accrual portssvc.PayrollAccrualSvc, reporting portssvc.ReportingSvc,
	notifier portssvc.AlertNotifier, settings TaskSettings, opts ...Option) portssvc.ScheduledTasksSvc {
	return &scheduledTasksService{
		BaseService: newBaseService(opts...),
		repos:       repos,
		accrual:     accrual,
		reporting:   reporting,
		notifier:    notifier,
		settings:    settings,
	}
}

var _ portssvc.ScheduledTasksSvc = (*scheduledTasksService)(nil)

// GenerateMonthlyPayroll accrues the current month for every active employee. Employees already
// accrued for the month are skipped, so the job can be re-run safely.
func (s *scheduledTasksService) GenerateMonthlyPayroll(ctx context.Context) (*domain.PayrollRunResult, error) {
	periodStart, periodEnd := domain.MonthBounds(s.today())
	active := domain.EmploymentActive
	employees, err := s.repos.Employees().ListEmployees(ctx, &active)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active employees")
		return nil, err
	}

	result := &domain.PayrollRunResult{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Created:     []domain.Payroll{},
		Skipped:     []string{},
	}
	var errs []error
	for _, emp := range employees {
		exists, err := s.repos.Payrolls().ExistsForPeriod(ctx, emp.EmployeeID, periodStart, periodEnd)
		if err != nil {
			errs = append(errs, fmt.Errorf("employee %s: %w", emp.EmployeeID, err))
			continue
		}
		if exists {
			result.Skipped = append(result.Skipped, emp.EmployeeID)
			continue
		}

		payroll, err := s.accrual.AccruePayroll(ctx, s.settings.SystemActor, domain.AccruePayrollCommand{
			EmployeeID:  emp.EmployeeID,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Bonus:       decimal.Zero,
			Deductions:  decimal.Zero,
		})
		if err != nil {
			// another run got there first
			if errors.Is(err, apperrors.ErrDuplicate) {
				result.Skipped = append(result.Skipped, emp.EmployeeID)
				continue
			}
			errs = append(errs, fmt.Errorf("employee %s: %w", emp.EmployeeID, err))
			continue
		}
		result.Created = append(result.Created, *payroll)
	}

	s.LogInfo(ctx, "Monthly payroll run finished",
		slog.String("period_start", periodStart.Format(domain.DateLayout)),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(errs)))
	return result, errors.Join(errs...)
}

// SnapshotMonthlyProfitAndLoss reports month-to-date P&L.
func (s *scheduledTasksService) SnapshotMonthlyProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error) {
	today := s.today()
	monthStart, _ := domain.MonthBounds(today)
	report, err := s.reporting.ProfitAndLoss(ctx, s.settings.SystemActor, monthStart, today)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Monthly P&L snapshot",
		slog.String("revenue", report.Revenue.String()),
		slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// ListOverdueReceivables returns unpaid invoices past their due date and notifies when any exist.
func (s *scheduledTasksService) ListOverdueReceivables(ctx context.Context) ([]domain.OverdueInvoice, error) {
	if err := s.Authorize(ctx, s.settings.SystemActor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	today := s.today()
	invoices, err := s.repos.Invoices().ListOverdueInvoices(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue invoices")
		return nil, err
	}

	overdue := make([]domain.OverdueInvoice, 0, len(invoices))
	total := decimal.Zero
	for _, inv := range invoices {
		if !inv.IsOverdue(today) {
			continue
		}
		overdue = append(overdue, domain.OverdueInvoice{
			InvoiceID:     inv.InvoiceID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerID:    inv.CustomerID,
			DueDate:       inv.DueDate,
			Outstanding:   inv.Outstanding(),
		})
		total = total.Add(inv.Outstanding())
	}

	if len(overdue) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%d invoice(s) overdue, %s outstanding", len(overdue), total.StringFixed(2))
		for _, inv := range overdue {
			fmt.Fprintf(&b, "\n%s due %s: %s", inv.InvoiceNumber, inv.DueDate.Format(domain.DateLayout), inv.Outstanding.StringFixed(2))
		}
		s.notify(ctx, "Overdue receivables", b.String())
	}
	return overdue, nil
}

// CheckLowCash flags a balance strictly below the threshold.
func (s *scheduledTasksService) CheckLowCash(ctx context.Context, threshold *decimal.Decimal) (*domain.LowCashAlert, error) {
	limit := s.settings.LowCashThreshold
	if threshold != nil {
		limit = *threshold
	}
	balance, err := s.reporting.CurrentCashBalance(ctx, s.settings.SystemActor)
	if err != nil {
		return nil, err
	}

	alert := &domain.LowCashAlert{
		IsLowCash:          balance.LessThan(limit),
		CurrentCashBalance: balance,
		Threshold:          limit,
	}
	if alert.IsLowCash {
		s.GetLogger(ctx).Warn("Cash balance below threshold",
			slog.String("balance", balance.String()),
			slog.String("threshold", limit.String()))
		s.notify(ctx, "Low cash", fmt.Sprintf("Cash balance %s is below the threshold of %s", balance.StringFixed(2), limit.StringFixed(2)))
	}
	return alert, nil
}

// notify delivers an alert. Delivery failures are logged and never fail the job.
func (s *scheduledTasksService) notify(ctx context.Context, subject, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, subject, body); err != nil {
		s.LogError(ctx, err, "Failed to deliver finance alert", slog.String("subject", subject))
	}
}
