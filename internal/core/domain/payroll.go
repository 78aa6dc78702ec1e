package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus is the lifecycle state of an employee.
type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentInactive EmploymentStatus = "inactive"
)

// Employee is a salaried member of staff.
type Employee struct {
	EmployeeID       string           `json:"employeeID"`
	FullName         string           `json:"fullName"`
	RoleTitle        string           `json:"roleTitle"`
	BaseSalary       decimal.Decimal  `json:"baseSalary"`
	HireDate         time.Time        `json:"hireDate"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	BankAccount      string           `json:"bankAccount,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// CreateEmployeeCommand carries the inputs for registering an employee.
type CreateEmployeeCommand struct {
	FullName         string
	RoleTitle        string
	BaseSalary       decimal.Decimal
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	BankAccount      string
}

// PaymentStatus is the settlement state of a payroll run.
type PaymentStatus string

const (
	PayrollPending  PaymentStatus = "pending"
	PayrollApproved PaymentStatus = "approved"
	PayrollPaid     PaymentStatus = "paid"
)

// Payroll is one employee's pay for one period. NetSalary is fixed at creation.
type Payroll struct {
	PayrollID            string          `json:"payrollID"`
	EmployeeID           string          `json:"employeeID"`
	PeriodStart          time.Time       `json:"periodStart"`
	PeriodEnd            time.Time       `json:"periodEnd"`
	BaseSalary           decimal.Decimal `json:"baseSalary"`
	Bonus                decimal.Decimal `json:"bonus"`
	Deductions           decimal.Decimal `json:"deductions"`
	NetSalary            decimal.Decimal `json:"netSalary"`
	PaymentStatus        PaymentStatus   `json:"paymentStatus"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	ApprovedBy           *string         `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// IsPaid reports whether the payroll has been settled.
func (p Payroll) IsPaid() bool {
	return p.PaymentStatus == PayrollPaid
}

// AccruePayrollCommand carries the inputs for a payroll accrual.
type AccruePayrollCommand struct {
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Bonus       decimal.Decimal
	Deductions  decimal.Decimal
}

// NetSalary computes base + bonus - deductions without flooring.
func NetSalary(base, bonus, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(bonus).Sub(deductions)
}
