package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// CashTransactionRepository appends cash movements.
type CashTransactionRepository interface {
	SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error
}

// AuditLogRepository appends audit trail records.
type AuditLogRepository interface {
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error
}

// InvoiceReader reads receivables owned by the billing module.
type InvoiceReader interface {
	// ListOverdueInvoices returns unpaid invoices whose due date is before asOf, oldest first.
	ListOverdueInvoices(ctx context.Context, asOf time.Time) ([]domain.Invoice, error)
}
