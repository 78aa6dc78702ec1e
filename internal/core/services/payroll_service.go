package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
)

// payrollService keeps the employee register, accrues payroll and settles it behind an approval code.
type payrollService struct {
	BaseService
	provider portsrepo.RepositoryProvider
	verifier portssvc.ApprovalCodeVerifier
}

// NewPayrollService creates a new PayrollSvcFacade.
func NewPayrollService(provider portsrepo.RepositoryProvider, verifier portssvc.ApprovalCodeVerifier, opts ...Option) portssvc.PayrollSvcFacade {
	return &payrollService{
		BaseService: newBaseService(opts...),
		provider:    provider,
		verifier:    verifier,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) CreateEmployee(ctx context.Context, actor domain.Actor, cmd domain.CreateEmployeeCommand) (*domain.Employee, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.FullName) == "" {
		return nil, validationError("full name is required")
	}
	if strings.TrimSpace(cmd.RoleTitle) == "" {
		return nil, validationError("role title is required")
	}
	if cmd.HireDate.IsZero() {
		return nil, validationError("hire date is required")
	}
	if err := accounting.ValidateNonNegativeAmount("base salary", cmd.BaseSalary); err != nil {
		return nil, err
	}
	status := cmd.EmploymentStatus
	if status == "" {
		status = domain.EmploymentActive
	}
	if status != domain.EmploymentActive && status != domain.EmploymentInactive {
		return nil, validationError("unknown employment status '%s'", status)
	}

	now := s.now()
	employee := domain.Employee{
		EmployeeID:       uuid.NewString(),
		FullName:         strings.TrimSpace(cmd.FullName),
		RoleTitle:        strings.TrimSpace(cmd.RoleTitle),
		BaseSalary:       cmd.BaseSalary,
		HireDate:         domain.DateOnly(cmd.HireDate),
		EmploymentStatus: status,
		BankAccount:      strings.TrimSpace(cmd.BankAccount),
		CreatedAt:        now,
	}

	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := repos.Employees().SaveEmployee(ctx, employee); err != nil {
			return fmt.Errorf("failed to save employee: %w", err)
		}
		return appendAudit(ctx, repos, domain.AuditCreateEmployee, "employee", employee.EmployeeID, actor.UserID, now,
			map[string]any{"role_title": employee.RoleTitle})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create employee")
		return nil, err
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *payrollService) GetEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Employees().FindEmployeeByID(ctx, employeeID)
}

func (s *payrollService) ListEmployees(ctx context.Context, actor domain.Actor, status *domain.EmploymentStatus) ([]domain.Employee, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Employees().ListEmployees(ctx, status)
}

// AccruePayroll books salary owed for a period: [Dr salary expense, Cr payroll liability] for the net amount.
// Net salary is fixed at accrual and may be negative when deductions exceed earnings.
func (s *payrollService) AccruePayroll(ctx context.Context, actor domain.Actor, cmd domain.AccruePayrollCommand) (*domain.Payroll, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.EmployeeID) == "" {
		return nil, validationError("employee id is required")
	}
	if cmd.PeriodStart.IsZero() || cmd.PeriodEnd.IsZero() {
		return nil, validationError("pay period start and end are required")
	}
	if cmd.PeriodEnd.Before(cmd.PeriodStart) {
		return nil, validationError("pay period ends before it starts")
	}
	if err := accounting.ValidateNonNegativeAmount("bonus", cmd.Bonus); err != nil {
		return nil, err
	}
	if err := accounting.ValidateNonNegativeAmount("deductions", cmd.Deductions); err != nil {
		return nil, err
	}

	periodStart, periodEnd := domain.DateOnly(cmd.PeriodStart), domain.DateOnly(cmd.PeriodEnd)
	now := s.now()
	var payroll *domain.Payroll
	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		employee, err := repos.Employees().FindEmployeeByID(ctx, cmd.EmployeeID)
		if err != nil {
			return err
		}
		exists, err := repos.Payrolls().ExistsForPeriod(ctx, employee.EmployeeID, periodStart, periodEnd)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: payroll for employee %s already accrued for %s to %s", apperrors.ErrDuplicate,
				employee.EmployeeID, periodStart.Format(domain.DateLayout), periodEnd.Format(domain.DateLayout))
		}
		if _, err := ensureDefaultAccounts(ctx, repos.Accounts()); err != nil {
			return err
		}

		net := domain.NetSalary(employee.BaseSalary, cmd.Bonus, cmd.Deductions)
		p := domain.Payroll{
			PayrollID:     uuid.NewString(),
			EmployeeID:    employee.EmployeeID,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
			BaseSalary:    employee.BaseSalary,
			Bonus:         cmd.Bonus,
			Deductions:    cmd.Deductions,
			NetSalary:     net,
			PaymentStatus: domain.PayrollPending,
			CreatedAt:     now,
		}
		entry, err := postEntry(ctx, repos, newAccountResolver(repos.Accounts()), postRequest{
			entry: domain.NewJournalEntry{
				EntryDate:     periodEnd,
				Description:   fmt.Sprintf("Payroll accrual for %s", employee.FullName),
				ReferenceType: domain.RefPayrollAccrual,
				ReferenceID:   p.PayrollID,
				Lines:         accounting.TwoLegs(domain.CodeSalaryExpense, domain.CodePayrollLiability, net),
			},
			createdBy: actor.UserID,
			createdAt: now,
		})
		if err != nil {
			return err
		}
		p.LinkedJournalEntryID = entry.EntryID

		if err := repos.Payrolls().SavePayroll(ctx, p); err != nil {
			return fmt.Errorf("failed to save payroll: %w", err)
		}
		payroll = &p
		return appendAudit(ctx, repos, domain.AuditProcessPayroll, "payroll", p.PayrollID, actor.UserID, now,
			map[string]any{"employee_id": p.EmployeeID, "net_salary": net.String()})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to accrue payroll", slog.String("employee_id", cmd.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll accrued",
		slog.String("payroll_id", payroll.PayrollID),
		slog.String("net_salary", payroll.NetSalary.String()))
	return payroll, nil
}

// ApproveAndPay settles a pending payroll with [Dr payroll liability, Cr cash] and a cash outflow.
// The payroll row is locked for the duration, so a concurrent second approval sees it paid
// and returns the stored record without writing anything.
func (s *payrollService) ApproveAndPay(ctx context.Context, actor domain.Actor, payrollID, otpCode string) (*domain.Payroll, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	if s.verifier == nil || !s.verifier.Verify(ctx, otpCode) {
		s.GetLogger(ctx).Warn("Payroll approval rejected: invalid authorization code",
			slog.String("payroll_id", payrollID),
			slog.String("user_id", actor.UserID))
		return nil, ErrInvalidAuthorizationCode
	}

	now := s.now()
	settled := false
	var payroll *domain.Payroll
	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		p, err := repos.Payrolls().FindPayrollByIDForUpdate(ctx, payrollID)
		if err != nil {
			return err
		}
		if p.IsPaid() {
			payroll = p
			return nil
		}

		resolver := newAccountResolver(repos.Accounts())
		if _, err := postEntry(ctx, repos, resolver, postRequest{
			entry: domain.NewJournalEntry{
				EntryDate:     domain.DateOnly(now),
				Description:   fmt.Sprintf("Payroll settlement #%s", p.PayrollID),
				ReferenceType: domain.RefPayrollPayment,
				ReferenceID:   p.PayrollID,
				Lines:         accounting.TwoLegs(domain.CodePayrollLiability, domain.CodeCash, p.NetSalary),
			},
			createdBy: actor.UserID,
			createdAt: now,
		}); err != nil {
			return err
		}

		// a negative net is money coming back from the employee
		if !p.NetSalary.IsZero() {
			direction := domain.Outflow
			if p.NetSalary.IsNegative() {
				direction = domain.Inflow
			}
			if err := recordCash(ctx, repos, resolver, domain.CodeCash, direction, domain.CashRefPayroll, p.PayrollID, p.NetSalary.Abs(), now); err != nil {
				return err
			}
		}

		if err := repos.Payrolls().MarkPaid(ctx, p.PayrollID, actor.UserID, now); err != nil {
			return err
		}
		approvedBy, approvedAt := actor.UserID, now
		p.PaymentStatus = domain.PayrollPaid
		p.ApprovedBy = &approvedBy
		p.ApprovedAt = &approvedAt
		payroll = p
		settled = true

		return appendAudit(ctx, repos, domain.AuditApprovePayroll, "payroll", p.PayrollID, actor.UserID, now,
			map[string]any{"net_salary": p.NetSalary.String()})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to approve payroll", slog.String("payroll_id", payrollID))
		return nil, err
	}

	if settled {
		s.LogInfo(ctx, "Payroll settled", slog.String("payroll_id", payrollID))
	} else {
		s.LogInfo(ctx, "Payroll already paid, nothing to settle", slog.String("payroll_id", payrollID))
	}
	return payroll, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Payrolls().FindPayrollByID(ctx, payrollID)
}

func (s *payrollService) ListPayrolls(ctx context.Context, actor domain.Actor, status *domain.PaymentStatus) ([]domain.Payroll, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	return s.provider.Repos.Payrolls().ListPayrolls(ctx, status)
}
