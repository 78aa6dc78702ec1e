package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// LedgerReaderSvc defines read operations for journal entries.
type LedgerReaderSvc interface {
	GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, actor domain.Actor, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// LedgerWriterSvc defines write operations for journal entries.
type LedgerWriterSvc interface {
	// CreateBalancedEntry posts a balanced entry atomically or fails with ErrUnbalancedEntry.
	CreateBalancedEntry(ctx context.Context, actor domain.Actor, req domain.NewJournalEntry) (*domain.JournalEntry, error)

	// Reverse posts a new entry with every line of entryID swapped.
	Reverse(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
