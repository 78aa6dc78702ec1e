package domain

import "time"

// Audit actions written by the finance core.
const (
	AuditRecordExpense      = "record_expense"
	AuditRecordIncome       = "record_income"
	AuditProcessPayroll     = "process_payroll"
	AuditApprovePayroll     = "approve_payroll"
	AuditCreateEmployee     = "create_employee"
	AuditCreateJournalEntry = "create_journal_entry"
	AuditReverseEntry       = "reverse_journal_entry"
)

// AuditLog is an append-only trail record.
type AuditLog struct {
	AuditLogID  string         `json:"auditLogID"`
	Action      string         `json:"action"`
	EntityType  string         `json:"entityType"`
	EntityID    string         `json:"entityID"`
	ActorUserID string         `json:"actorUserID"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
}
