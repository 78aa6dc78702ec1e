package dto

import (
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest defines the data needed to record an operating expense.
type RecordExpenseRequest struct {
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description"`
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_gt0" swaggertype:"string" example:"1200.00"`
	PaymentMethod string          `json:"paymentMethod" binding:"required" example:"cash"`
	ExpenseDate   string          `json:"expenseDate" binding:"required,datetime=2006-01-02" example:"2026-03-01"`
}

func (r RecordExpenseRequest) ToCommand(loc *time.Location) (domain.RecordExpenseCommand, error) {
	date, err := ParseDate(r.ExpenseDate, loc)
	if err != nil {
		return domain.RecordExpenseCommand{}, err
	}
	return domain.RecordExpenseCommand{
		Category:      r.Category,
		Description:   r.Description,
		Vendor:        r.Vendor,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ExpenseDate:   date,
	}, nil
}

// RecordIncomeRequest defines the data needed to record income.
type RecordIncomeRequest struct {
	Source        string          `json:"source" binding:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_gt0" swaggertype:"string" example:"2000.00"`
	PaymentMethod string          `json:"paymentMethod" binding:"required" example:"bank_transfer"`
	IncomeDate    string          `json:"incomeDate" binding:"required,datetime=2006-01-02"`
}

func (r RecordIncomeRequest) ToCommand(loc *time.Location) (domain.RecordIncomeCommand, error) {
	date, err := ParseDate(r.IncomeDate, loc)
	if err != nil {
		return domain.RecordIncomeCommand{}, err
	}
	return domain.RecordIncomeCommand{
		Source:        r.Source,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		IncomeDate:    date,
	}, nil
}

// CreateEmployeeRequest defines the data needed to add an employee.
type CreateEmployeeRequest struct {
	FullName         string          `json:"fullName" binding:"required"`
	RoleTitle        string          `json:"roleTitle" binding:"required"`
	BaseSalary       decimal.Decimal `json:"baseSalary" binding:"decimal_gte0" swaggertype:"string" example:"5000.00"`
	HireDate         string          `json:"hireDate" binding:"required,datetime=2006-01-02"`
	EmploymentStatus string          `json:"employmentStatus" binding:"omitempty,oneof=active inactive"`
	BankAccount      string          `json:"bankAccount"`
}

func (r CreateEmployeeRequest) ToCommand(loc *time.Location) (domain.CreateEmployeeCommand, error) {
	hired, err := ParseDate(r.HireDate, loc)
	if err != nil {
		return domain.CreateEmployeeCommand{}, err
	}
	return domain.CreateEmployeeCommand{
		FullName:         r.FullName,
		RoleTitle:        r.RoleTitle,
		BaseSalary:       r.BaseSalary,
		HireDate:         hired,
		EmploymentStatus: domain.EmploymentStatus(r.EmploymentStatus),
		BankAccount:      r.BankAccount,
	}, nil
}

// AccruePayrollRequest defines the data needed to accrue one employee's payroll for a period.
type AccruePayrollRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	PeriodStart string          `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	Bonus       decimal.Decimal `json:"bonus" binding:"decimal_gte0" swaggertype:"string" example:"0"`
	Deductions  decimal.Decimal `json:"deductions" binding:"decimal_gte0" swaggertype:"string" example:"0"`
}

func (r AccruePayrollRequest) ToCommand(loc *time.Location) (domain.AccruePayrollCommand, error) {
	start, err := ParseDate(r.PeriodStart, loc)
	if err != nil {
		return domain.AccruePayrollCommand{}, err
	}
	end, err := ParseDate(r.PeriodEnd, loc)
	if err != nil {
		return domain.AccruePayrollCommand{}, err
	}
	return domain.AccruePayrollCommand{
		EmployeeID:  r.EmployeeID,
		PeriodStart: start,
		PeriodEnd:   end,
		Bonus:       r.Bonus,
		Deductions:  r.Deductions,
	}, nil
}

// ApprovePayrollRequest carries the one-time approval code for settlement.
type ApprovePayrollRequest struct {
	OTPCode string `json:"otpCode" binding:"required"`
}

// JournalLineRequest is one side of a manual journal entry, addressed by account code.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required" example:"1000"`
	Debit       decimal.Decimal `json:"debit" binding:"decimal_gte0" swaggertype:"string" example:"0"`
	Credit      decimal.Decimal `json:"credit" binding:"decimal_gte0" swaggertype:"string" example:"100.00"`
}

// CreateJournalEntryRequest defines the data needed to post a manual journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   string               `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required"`
	ReferenceID string               `json:"referenceID"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

func (r CreateJournalEntryRequest) ToNewEntry(loc *time.Location) (domain.NewJournalEntry, error) {
	date, err := ParseDate(r.EntryDate, loc)
	if err != nil {
		return domain.NewJournalEntry{}, err
	}
	lines := make([]domain.NewJournalLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.NewJournalLine{
			AccountCode: domain.AccountCode(l.AccountCode),
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return domain.NewJournalEntry{
		EntryDate:     date,
		Description:   r.Description,
		ReferenceType: domain.RefManual,
		ReferenceID:   r.ReferenceID,
		Lines:         lines,
	}, nil
}

// DateRangeQuery binds optional from/to/limit query parameters of list endpoints.
type DateRangeQuery struct {
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q DateRangeQuery) ToFilter(loc *time.Location) (domain.DateRangeFilter, error) {
	filter := domain.DateRangeFilter{Limit: q.Limit}
	if q.From != "" {
		from, err := ParseDate(q.From, loc)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := ParseDate(q.To, loc)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

// ListJournalEntriesParams binds pagination query parameters.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}
