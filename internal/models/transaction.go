package models

import (
	"database/sql"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Expense is a row of expenses.
type Expense struct {
	ExpenseID            string          `db:"expense_id"`
	Category             string          `db:"category"`
	Description          string          `db:"description"`
	Vendor               sql.NullString  `db:"vendor"`
	Amount               decimal.Decimal `db:"amount"`
	PaymentMethod        string          `db:"payment_method"`
	ExpenseDate          time.Time       `db:"expense_date"`
	LinkedJournalEntryID string          `db:"linked_journal_entry_id"`
	CreatedAt            time.Time       `db:"created_at"`
	CreatedBy            string          `db:"created_by"`
}

// Income is a row of incomes.
type Income struct {
	IncomeID             string          `db:"income_id"`
	Source               string          `db:"source"`
	Description          string          `db:"description"`
	Amount               decimal.Decimal `db:"amount"`
	PaymentMethod        string          `db:"payment_method"`
	IncomeDate           time.Time       `db:"income_date"`
	LinkedJournalEntryID string          `db:"linked_journal_entry_id"`
	CreatedAt            time.Time       `db:"created_at"`
}

// Invoice is a row of invoices. The billing module owns writes.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	OrderID       sql.NullString  `db:"order_id"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Status        string          `db:"status"`
}

func FromDomainExpense(e domain.Expense) Expense {
	return Expense{
		ExpenseID:            e.ExpenseID,
		Category:             e.Category,
		Description:          e.Description,
		Vendor:               sql.NullString{String: e.Vendor, Valid: e.Vendor != ""},
		Amount:               e.Amount,
		PaymentMethod:        e.PaymentMethod,
		ExpenseDate:          e.ExpenseDate,
		LinkedJournalEntryID: e.LinkedJournalEntryID,
		CreatedAt:            e.CreatedAt,
		CreatedBy:            e.CreatedBy,
	}
}

func (m Expense) ToDomain() domain.Expense {
	return domain.Expense{
		ExpenseID:            m.ExpenseID,
		Category:             m.Category,
		Description:          m.Description,
		Vendor:               m.Vendor.String,
		Amount:               m.Amount,
		PaymentMethod:        m.PaymentMethod,
		ExpenseDate:          m.ExpenseDate,
		LinkedJournalEntryID: m.LinkedJournalEntryID,
		AuditFields:          domain.AuditFields{CreatedAt: m.CreatedAt, CreatedBy: m.CreatedBy},
	}
}

func FromDomainIncome(i domain.Income) Income {
	return Income{
		IncomeID:             i.IncomeID,
		Source:               i.Source,
		Description:          i.Description,
		Amount:               i.Amount,
		PaymentMethod:        i.PaymentMethod,
		IncomeDate:           i.IncomeDate,
		LinkedJournalEntryID: i.LinkedJournalEntryID,
		CreatedAt:            i.CreatedAt,
	}
}

func (m Income) ToDomain() domain.Income {
	return domain.Income(m)
}

func (m Invoice) ToDomain() domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Status:        domain.InvoiceStatus(m.Status),
	}
	if m.OrderID.Valid {
		id := m.OrderID.String
		inv.OrderID = &id
	}
	return inv
}
