package models

import (
	"database/sql"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Employee is a row of employees.
type Employee struct {
	EmployeeID       string          `db:"employee_id"`
	FullName         string          `db:"full_name"`
	RoleTitle        string          `db:"role_title"`
	BaseSalary       decimal.Decimal `db:"base_salary"`
	HireDate         time.Time       `db:"hire_date"`
	EmploymentStatus string          `db:"employment_status"`
	BankAccount      sql.NullString  `db:"bank_account"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Payroll is a row of payrolls.
type Payroll struct {
	PayrollID            string          `db:"payroll_id"`
	EmployeeID           string          `db:"employee_id"`
	PeriodStart          time.Time       `db:"period_start"`
	PeriodEnd            time.Time       `db:"period_end"`
	BaseSalary           decimal.Decimal `db:"base_salary"`
	Bonus                decimal.Decimal `db:"bonus"`
	Deductions           decimal.Decimal `db:"deductions"`
	NetSalary            decimal.Decimal `db:"net_salary"`
	PaymentStatus        string          `db:"payment_status"`
	LinkedJournalEntryID string          `db:"linked_journal_entry_id"`
	ApprovedBy           sql.NullString  `db:"approved_by"`
	ApprovedAt           sql.NullTime    `db:"approved_at"`
	CreatedAt            time.Time       `db:"created_at"`
}

func FromDomainEmployee(e domain.Employee) Employee {
	return Employee{
		EmployeeID:       e.EmployeeID,
		FullName:         e.FullName,
		RoleTitle:        e.RoleTitle,
		BaseSalary:       e.BaseSalary,
		HireDate:         e.HireDate,
		EmploymentStatus: string(e.EmploymentStatus),
		BankAccount:      sql.NullString{String: e.BankAccount, Valid: e.BankAccount != ""},
		CreatedAt:        e.CreatedAt,
	}
}

func (m Employee) ToDomain() domain.Employee {
	return domain.Employee{
		EmployeeID:       m.EmployeeID,
		FullName:         m.FullName,
		RoleTitle:        m.RoleTitle,
		BaseSalary:       m.BaseSalary,
		HireDate:         m.HireDate,
		EmploymentStatus: domain.EmploymentStatus(m.EmploymentStatus),
		BankAccount:      m.BankAccount.String,
		CreatedAt:        m.CreatedAt,
	}
}

func FromDomainPayroll(p domain.Payroll) Payroll {
	m := Payroll{
		PayrollID:            p.PayrollID,
		EmployeeID:           p.EmployeeID,
		PeriodStart:          p.PeriodStart,
		PeriodEnd:            p.PeriodEnd,
		BaseSalary:           p.BaseSalary,
		Bonus:                p.Bonus,
		Deductions:           p.Deductions,
		NetSalary:            p.NetSalary,
		PaymentStatus:        string(p.PaymentStatus),
		LinkedJournalEntryID: p.LinkedJournalEntryID,
		CreatedAt:            p.CreatedAt,
	}
	if p.ApprovedBy != nil {
		m.ApprovedBy = sql.NullString{String: *p.ApprovedBy, Valid: true}
	}
	if p.ApprovedAt != nil {
		m.ApprovedAt = sql.NullTime{Time: *p.ApprovedAt, Valid: true}
	}
	return m
}

func (m Payroll) ToDomain() domain.Payroll {
	p := domain.Payroll{
		PayrollID:            m.PayrollID,
		EmployeeID:           m.EmployeeID,
		PeriodStart:          m.PeriodStart,
		PeriodEnd:            m.PeriodEnd,
		BaseSalary:           m.BaseSalary,
		Bonus:                m.Bonus,
		Deductions:           m.Deductions,
		NetSalary:            m.NetSalary,
		PaymentStatus:        domain.PaymentStatus(m.PaymentStatus),
		LinkedJournalEntryID: m.LinkedJournalEntryID,
		CreatedAt:            m.CreatedAt,
	}
	if m.ApprovedBy.Valid {
		by := m.ApprovedBy.String
		p.ApprovedBy = &by
	}
	if m.ApprovedAt.Valid {
		at := m.ApprovedAt.Time
		p.ApprovedAt = &at
	}
	return p
}
