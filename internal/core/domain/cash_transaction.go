package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CashDirection tells whether money entered or left the business.
type CashDirection string

const (
	Inflow  CashDirection = "inflow"
	Outflow CashDirection = "outflow"
)

// CashReferenceType names the event behind a cash movement.
type CashReferenceType string

const (
	CashRefIncome  CashReferenceType = "income"
	CashRefOrder   CashReferenceType = "order"
	CashRefExpense CashReferenceType = "expense"
	CashRefPayroll CashReferenceType = "payroll"
)

// Reference types counted by the cashflow report on each side. Payroll shows up as an
// inflow when a negative net salary is settled.
var (
	CashflowInflowRefs  = []CashReferenceType{CashRefIncome, CashRefOrder, CashRefPayroll}
	CashflowOutflowRefs = []CashReferenceType{CashRefExpense, CashRefPayroll}
)

// CountsInCashflow reports whether a movement with this direction and reference type is
// picked up by the cashflow report.
func CountsInCashflow(direction CashDirection, ref CashReferenceType) bool {
	switch direction {
	case Inflow:
		return slices.Contains(CashflowInflowRefs, ref)
	case Outflow:
		return slices.Contains(CashflowOutflowRefs, ref)
	}
	return false
}

// CashTransaction records a cash movement for cashflow reporting, independent of the ledger.
type CashTransaction struct {
	CashTransactionID string            `json:"cashTransactionID"`
	AccountID         string            `json:"accountID"`
	Direction         CashDirection     `json:"direction"`
	ReferenceType     CashReferenceType `json:"referenceType"`
	ReferenceID       string            `json:"referenceID"`
	Amount            decimal.Decimal   `json:"amount"`
	CreatedAt         time.Time         `json:"createdAt"`
}
