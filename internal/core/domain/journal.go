package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType names the domain event that produced a journal entry.
type ReferenceType string

const (
	RefExpense        ReferenceType = "expense"
	RefIncome         ReferenceType = "income"
	RefPayrollAccrual ReferenceType = "payroll_accrual"
	RefPayrollPayment ReferenceType = "payroll_payment"
	RefReversal       ReferenceType = "reversal"
	RefManual         ReferenceType = "manual"
)

// JournalEntry is an atomic, dated financial event made of balanced lines.
type JournalEntry struct {
	EntryID           string        `json:"entryID"`
	EntryDate         time.Time     `json:"entryDate"`
	Description       string        `json:"description"`
	ReferenceType     ReferenceType `json:"referenceType"`
	ReferenceID       string        `json:"referenceID"`
	IsReversal        bool          `json:"isReversal"`
	ReversalOfEntryID *string       `json:"reversalOfEntryID,omitempty"`
	Lines             []JournalLine `json:"lines"`
	AuditFields
}

// JournalLine posts one debit or credit amount against an account.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	AccountCode AccountCode     `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// NewJournalEntry is the request to post a balanced entry. Lines reference accounts by code.
type NewJournalEntry struct {
	EntryDate     time.Time
	Description   string
	ReferenceType ReferenceType
	ReferenceID   string
	Lines         []NewJournalLine
}

// NewJournalLine is one requested posting.
type NewJournalLine struct {
	AccountCode AccountCode
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// DebitLine is shorthand for a debit posting.
func DebitLine(code AccountCode, amount decimal.Decimal) NewJournalLine {
	return NewJournalLine{AccountCode: code, Debit: amount, Credit: decimal.Zero}
}

// CreditLine is shorthand for a credit posting.
func CreditLine(code AccountCode, amount decimal.Decimal) NewJournalLine {
	return NewJournalLine{AccountCode: code, Debit: decimal.Zero, Credit: amount}
}

// Totals returns the debit and credit sums of the entry's lines.
func (e JournalEntry) Totals() (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// IsBalanced reports whether total debits equal total credits exactly.
func (e JournalEntry) IsBalanced() bool {
	d, c := e.Totals()
	return d.Equal(c)
}
