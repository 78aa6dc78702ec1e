package models

import (
	"database/sql"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	EntryID           string         `db:"entry_id"`
	EntryDate         time.Time      `db:"entry_date"`
	Description       string         `db:"description"`
	ReferenceType     string         `db:"reference_type"`
	ReferenceID       string         `db:"reference_id"`
	IsReversal        bool           `db:"is_reversal"`
	ReversalOfEntryID sql.NullString `db:"reversal_of_entry_id"`
	CreatedAt         time.Time      `db:"created_at"`
	CreatedBy         string         `db:"created_by"`
}

// JournalLine is a row of journal_lines joined with its account code.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}

// FromDomainJournalEntry converts an entry header for storage.
func FromDomainJournalEntry(e domain.JournalEntry) JournalEntry {
	m := JournalEntry{
		EntryID:       e.EntryID,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		ReferenceType: string(e.ReferenceType),
		ReferenceID:   e.ReferenceID,
		IsReversal:    e.IsReversal,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
	if e.ReversalOfEntryID != nil {
		m.ReversalOfEntryID = sql.NullString{String: *e.ReversalOfEntryID, Valid: true}
	}
	return m
}

// ToDomain converts the header back. Lines are attached by the caller.
func (m JournalEntry) ToDomain() domain.JournalEntry {
	e := domain.JournalEntry{
		EntryID:       m.EntryID,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		IsReversal:    m.IsReversal,
		Lines:         []domain.JournalLine{},
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		},
	}
	if m.ReversalOfEntryID.Valid {
		id := m.ReversalOfEntryID.String
		e.ReversalOfEntryID = &id
	}
	return e
}

func (m JournalLine) ToDomain() domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNo:      m.LineNo,
		AccountID:   m.AccountID,
		AccountCode: domain.AccountCode(m.AccountCode),
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}
