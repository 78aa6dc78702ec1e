package repositories

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindEntryByID retrieves an entry together with its ordered lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindReversalOf returns the entry reversing entryID, or apperrors.ErrNotFound.
	FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns entries newest first, using token-based pagination.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveEntry persists the header and every line of entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
