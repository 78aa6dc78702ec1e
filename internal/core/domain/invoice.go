package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the collection state of a customer invoice.
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "open"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is a receivable raised against a customer. The finance core only reads invoices.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	OrderID       *string         `json:"orderID,omitempty"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Status        InvoiceStatus   `json:"status"`
}

// Outstanding is the unpaid remainder of the invoice.
func (i Invoice) Outstanding() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// IsOverdue reports whether the invoice is unpaid past its due date.
func (i Invoice) IsOverdue(today time.Time) bool {
	return i.Status != InvoicePaid && i.DueDate.Before(DateOnly(today))
}
