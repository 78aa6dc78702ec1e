package dto

import (
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a chart of accounts entry.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountResponse{
			AccountID:   a.AccountID,
			Code:        string(a.Code),
			Name:        a.Name,
			AccountType: string(a.AccountType),
		})
	}
	return out
}

type ExpenseResponse struct {
	ExpenseID            string          `json:"expenseID"`
	Category             string          `json:"category"`
	Description          string          `json:"description"`
	Vendor               string          `json:"vendor,omitempty"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentMethod        string          `json:"paymentMethod"`
	ExpenseDate          string          `json:"expenseDate"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:            e.ExpenseID,
		Category:             e.Category,
		Description:          e.Description,
		Vendor:               e.Vendor,
		Amount:               e.Amount,
		PaymentMethod:        e.PaymentMethod,
		ExpenseDate:          formatDate(e.ExpenseDate),
		LinkedJournalEntryID: e.LinkedJournalEntryID,
		CreatedAt:            e.CreatedAt,
		CreatedBy:            e.CreatedBy,
	}
}

func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, ToExpenseResponse(&expenses[i]))
	}
	return out
}

type IncomeResponse struct {
	IncomeID             string          `json:"incomeID"`
	Source               string          `json:"source"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentMethod        string          `json:"paymentMethod"`
	IncomeDate           string          `json:"incomeDate"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	CreatedAt            time.Time       `json:"createdAt"`
}

func ToIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:             i.IncomeID,
		Source:               i.Source,
		Description:          i.Description,
		Amount:               i.Amount,
		PaymentMethod:        i.PaymentMethod,
		IncomeDate:           formatDate(i.IncomeDate),
		LinkedJournalEntryID: i.LinkedJournalEntryID,
		CreatedAt:            i.CreatedAt,
	}
}

func ToListIncomeResponse(incomes []domain.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(incomes))
	for i := range incomes {
		out = append(out, ToIncomeResponse(&incomes[i]))
	}
	return out
}

type EmployeeResponse struct {
	EmployeeID       string          `json:"employeeID"`
	FullName         string          `json:"fullName"`
	RoleTitle        string          `json:"roleTitle"`
	BaseSalary       decimal.Decimal `json:"baseSalary" swaggertype:"string"`
	HireDate         string          `json:"hireDate"`
	EmploymentStatus string          `json:"employmentStatus"`
	BankAccount      string          `json:"bankAccount,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:       e.EmployeeID,
		FullName:         e.FullName,
		RoleTitle:        e.RoleTitle,
		BaseSalary:       e.BaseSalary,
		HireDate:         formatDate(e.HireDate),
		EmploymentStatus: string(e.EmploymentStatus),
		BankAccount:      e.BankAccount,
		CreatedAt:        e.CreatedAt,
	}
}

func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, ToEmployeeResponse(&employees[i]))
	}
	return out
}

type PayrollResponse struct {
	PayrollID            string          `json:"payrollID"`
	EmployeeID           string          `json:"employeeID"`
	PeriodStart          string          `json:"periodStart"`
	PeriodEnd            string          `json:"periodEnd"`
	BaseSalary           decimal.Decimal `json:"baseSalary" swaggertype:"string"`
	Bonus                decimal.Decimal `json:"bonus" swaggertype:"string"`
	Deductions           decimal.Decimal `json:"deductions" swaggertype:"string"`
	NetSalary            decimal.Decimal `json:"netSalary" swaggertype:"string"`
	PaymentStatus        string          `json:"paymentStatus"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	ApprovedBy           *string         `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

func ToPayrollResponse(p *domain.Payroll) PayrollResponse {
	return PayrollResponse{
		PayrollID:            p.PayrollID,
		EmployeeID:           p.EmployeeID,
		PeriodStart:          formatDate(p.PeriodStart),
		PeriodEnd:            formatDate(p.PeriodEnd),
		BaseSalary:           p.BaseSalary,
		Bonus:                p.Bonus,
		Deductions:           p.Deductions,
		NetSalary:            p.NetSalary,
		PaymentStatus:        string(p.PaymentStatus),
		LinkedJournalEntryID: p.LinkedJournalEntryID,
		ApprovedBy:           p.ApprovedBy,
		ApprovedAt:           p.ApprovedAt,
		CreatedAt:            p.CreatedAt,
	}
}

func ToListPayrollResponse(payrolls []domain.Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		out = append(out, ToPayrollResponse(&payrolls[i]))
	}
	return out
}

type JournalLineResponse struct {
	LineNo      int             `json:"lineNo"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string"`
}

type JournalEntryResponse struct {
	EntryID           string                `json:"entryID"`
	EntryDate         string                `json:"entryDate"`
	Description       string                `json:"description"`
	ReferenceType     string                `json:"referenceType"`
	ReferenceID       string                `json:"referenceID,omitempty"`
	IsReversal        bool                  `json:"isReversal"`
	ReversalOfEntryID *string               `json:"reversalOfEntryID,omitempty"`
	Lines             []JournalLineResponse `json:"lines"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
}

func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, JournalLineResponse{
			LineNo:      l.LineNo,
			AccountCode: string(l.AccountCode),
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return JournalEntryResponse{
		EntryID:           e.EntryID,
		EntryDate:         formatDate(e.EntryDate),
		Description:       e.Description,
		ReferenceType:     string(e.ReferenceType),
		ReferenceID:       e.ReferenceID,
		IsReversal:        e.IsReversal,
		ReversalOfEntryID: e.ReversalOfEntryID,
		Lines:             lines,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ListJournalEntriesResponse is a page of entries. NextToken is absent on the last page.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	out := make([]JournalEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToJournalEntryResponse(&entries[i]))
	}
	return ListJournalEntriesResponse{Entries: out, NextToken: nextToken}
}
