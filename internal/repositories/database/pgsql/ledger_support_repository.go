package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/SscSPs/retail_finance_core/internal/models"
)

type PgxCashTransactionRepository struct {
	BaseRepository
}

type PgxAuditLogRepository struct {
	BaseRepository
}

// PgxInvoiceRepository reads invoices written by the billing module.
type PgxInvoiceRepository struct {
	BaseRepository
}

var (
	_ portsrepo.CashTransactionRepository = (*PgxCashTransactionRepository)(nil)
	_ portsrepo.AuditLogRepository        = (*PgxAuditLogRepository)(nil)
	_ portsrepo.InvoiceReader             = (*PgxInvoiceRepository)(nil)
)

func (r *PgxCashTransactionRepository) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	query := `
		INSERT INTO cash_transactions (cash_transaction_id, account_id, direction, reference_type, reference_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.DB.Exec(ctx, query,
		txn.CashTransactionID,
		txn.AccountID,
		string(txn.Direction),
		string(txn.ReferenceType),
		txn.ReferenceID,
		txn.Amount,
		txn.CreatedAt,
	)
	return mapWriteError(err, "insert cash transaction "+txn.CashTransactionID)
}

func (r *PgxAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode audit metadata: %w", err)
	}

	query := `
		INSERT INTO audit_logs (audit_log_id, action, entity_type, entity_id, actor_user_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.DB.Exec(ctx, query,
		entry.AuditLogID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.ActorUserID,
		raw,
		entry.CreatedAt,
	)
	return mapWriteError(err, "insert audit log "+entry.AuditLogID)
}

func (r *PgxInvoiceRepository) ListOverdueInvoices(ctx context.Context, asOf time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_number, customer_id, order_id, issue_date, due_date, total_amount, paid_amount, status
		FROM invoices
		WHERE status <> 'paid' AND due_date < $1
		ORDER BY due_date, invoice_number;
	`
	rows, err := r.DB.Query(ctx, query, domain.DateOnly(asOf))
	if err != nil {
		return nil, mapWriteError(err, "list overdue invoices")
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var m models.Invoice
		if err := rows.Scan(
			&m.InvoiceID, &m.InvoiceNumber, &m.CustomerID, &m.OrderID, &m.IssueDate,
			&m.DueDate, &m.TotalAmount, &m.PaidAmount, &m.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate invoices")
	}
	return invoices, nil
}
