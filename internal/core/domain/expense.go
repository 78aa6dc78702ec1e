package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an immutable record of money spent. It owns exactly one journal entry.
type Expense struct {
	ExpenseID            string          `json:"expenseID"`
	Category             string          `json:"category"`
	Description          string          `json:"description"`
	Vendor               string          `json:"vendor"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentMethod        string          `json:"paymentMethod"`
	ExpenseDate          time.Time       `json:"expenseDate"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	AuditFields
}

// RecordExpenseCommand carries the inputs of an expense recording.
type RecordExpenseCommand struct {
	Category      string
	Description   string
	Vendor        string
	Amount        decimal.Decimal
	PaymentMethod string
	ExpenseDate   time.Time
}

// Income is an immutable record of money received. It owns exactly one journal entry.
type Income struct {
	IncomeID             string          `json:"incomeID"`
	Source               string          `json:"source"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentMethod        string          `json:"paymentMethod"`
	IncomeDate           time.Time       `json:"incomeDate"`
	LinkedJournalEntryID string          `json:"linkedJournalEntryID"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// RecordIncomeCommand carries the inputs of an income recording.
type RecordIncomeCommand struct {
	Source        string
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	IncomeDate    time.Time
}
