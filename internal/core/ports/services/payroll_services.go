package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// EmployeeSvc manages the employee register.
type EmployeeSvc interface {
	CreateEmployee(ctx context.Context, actor domain.Actor, cmd domain.CreateEmployeeCommand) (*domain.Employee, error)
	GetEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, actor domain.Actor, status *domain.EmploymentStatus) ([]domain.Employee, error)
}

//go:generate mockgen -destination=mocks/mock_payroll_services.go -package=mocks . PayrollAccrualSvc

// PayrollAccrualSvc accrues payroll obligations.
type PayrollAccrualSvc interface {
	AccruePayroll(ctx context.Context, actor domain.Actor, cmd domain.AccruePayrollCommand) (*domain.Payroll, error)
}

// PayrollApprovalSvc settles accrued payroll.
type PayrollApprovalSvc interface {
	// ApproveAndPay settles a payroll once. Repeating it on a paid payroll returns the stored record.
	ApproveAndPay(ctx context.Context, actor domain.Actor, payrollID, otpCode string) (*domain.Payroll, error)
}

// PayrollReaderSvc reads payroll runs.
type PayrollReaderSvc interface {
	GetPayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, actor domain.Actor, status *domain.PaymentStatus) ([]domain.Payroll, error)
}

// PayrollSvcFacade combines all payroll service interfaces.
type PayrollSvcFacade interface {
	EmployeeSvc
	PayrollAccrualSvc
	PayrollApprovalSvc
	PayrollReaderSvc
}
