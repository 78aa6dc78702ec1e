package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// EmployeeRepositoryFacade persists employees.
type EmployeeRepositoryFacade interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	// ListEmployees filters by status when status is non-nil.
	ListEmployees(ctx context.Context, status *domain.EmploymentStatus) ([]domain.Employee, error)
}

// PayrollReader defines read operations for payroll runs.
type PayrollReader interface {
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, status *domain.PaymentStatus) ([]domain.Payroll, error)
	ExistsForPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (bool, error)
}

// PayrollWriter defines write operations for payroll runs.
type PayrollWriter interface {
	SavePayroll(ctx context.Context, payroll domain.Payroll) error

	// FindPayrollByIDForUpdate locks the payroll row until the surrounding transaction ends.
	FindPayrollByIDForUpdate(ctx context.Context, payrollID string) (*domain.Payroll, error)

	// MarkPaid moves a payroll that is not yet paid to paid. It returns apperrors.ErrConflict
	// when no row changed.
	MarkPaid(ctx context.Context, payrollID, approvedBy string, approvedAt time.Time) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces.
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
