package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/SscSPs/retail_finance_core/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

type PgxPayrollRepository struct {
	BaseRepository
}

var (
	_ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)
	_ portsrepo.PayrollRepositoryFacade  = (*PgxPayrollRepository)(nil)
)

const employeeColumns = `employee_id, full_name, role_title, base_salary, hire_date, employment_status, bank_account, created_at`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(&m.EmployeeID, &m.FullName, &m.RoleTitle, &m.BaseSalary, &m.HireDate, &m.EmploymentStatus, &m.BankAccount, &m.CreatedAt)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := models.FromDomainEmployee(employee)
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.DB.Exec(ctx, query,
		m.EmployeeID,
		m.FullName,
		m.RoleTitle,
		m.BaseSalary,
		m.HireDate,
		m.EmploymentStatus,
		m.BankAccount,
		m.CreatedAt,
	)
	return mapWriteError(err, "insert employee "+m.EmployeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployee(r.DB.QueryRow(ctx, query, employeeID))
	if err != nil {
		return nil, mapReadError(err, "employee", employeeID)
	}
	e := m.ToDomain()
	return &e, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, status *domain.EmploymentStatus) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	if status != nil {
		query += ` WHERE employment_status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY full_name, employee_id;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, "list employees")
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate employees")
	}
	return employees, nil
}

const payrollColumns = `payroll_id, employee_id, period_start, period_end, base_salary, bonus, deductions, net_salary,
	payment_status, linked_journal_entry_id, approved_by, approved_at, created_at`

func scanPayroll(row pgx.Row) (models.Payroll, error) {
	var m models.Payroll
	err := row.Scan(
		&m.PayrollID,
		&m.EmployeeID,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.BaseSalary,
		&m.Bonus,
		&m.Deductions,
		&m.NetSalary,
		&m.PaymentStatus,
		&m.LinkedJournalEntryID,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	m := models.FromDomainPayroll(payroll)
	query := `INSERT INTO payrolls (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.DB.Exec(ctx, query,
		m.PayrollID,
		m.EmployeeID,
		m.PeriodStart,
		m.PeriodEnd,
		m.BaseSalary,
		m.Bonus,
		m.Deductions,
		m.NetSalary,
		m.PaymentStatus,
		m.LinkedJournalEntryID,
		m.ApprovedBy,
		m.ApprovedAt,
		m.CreatedAt,
	)
	return mapWriteError(err, "insert payroll "+m.PayrollID)
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	return r.findPayroll(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE payroll_id = $1;`, payrollID)
}

// FindPayrollByIDForUpdate holds a row lock so concurrent approvals of one payroll serialize.
func (r *PgxPayrollRepository) FindPayrollByIDForUpdate(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	return r.findPayroll(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE payroll_id = $1 FOR UPDATE;`, payrollID)
}

func (r *PgxPayrollRepository) findPayroll(ctx context.Context, query, payrollID string) (*domain.Payroll, error) {
	m, err := scanPayroll(r.DB.QueryRow(ctx, query, payrollID))
	if err != nil {
		return nil, mapReadError(err, "payroll", payrollID)
	}
	p := m.ToDomain()
	return &p, nil
}

func (r *PgxPayrollRepository) ListPayrolls(ctx context.Context, status *domain.PaymentStatus) ([]domain.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls`
	args := []any{}
	if status != nil {
		query += ` WHERE payment_status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY period_end DESC, created_at DESC;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError(err, "list payrolls")
	}
	defer rows.Close()

	payrolls := []domain.Payroll{}
	for rows.Next() {
		m, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate payrolls")
	}
	return payrolls, nil
}

func (r *PgxPayrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payrolls WHERE employee_id = $1 AND period_start = $2 AND period_end = $3);`
	var exists bool
	if err := r.DB.QueryRow(ctx, query, employeeID, periodStart, periodEnd).Scan(&exists); err != nil {
		return false, mapWriteError(err, "check payroll period for employee "+employeeID)
	}
	return exists, nil
}

func (r *PgxPayrollRepository) MarkPaid(ctx context.Context, payrollID, approvedBy string, approvedAt time.Time) error {
	query := `
		UPDATE payrolls
		SET payment_status = 'paid', approved_by = $2, approved_at = $3
		WHERE payroll_id = $1 AND payment_status <> 'paid';
	`
	tag, err := r.DB.Exec(ctx, query, payrollID, approvedBy, approvedAt)
	if err != nil {
		return mapWriteError(err, "mark payroll "+payrollID+" paid")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payroll %s is missing or already paid", apperrors.ErrConflict, payrollID)
	}
	return nil
}
