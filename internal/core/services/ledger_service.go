package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
)

const (
	defaultEntryPageSize = 20
	maxEntryPageSize     = 100
)

// ledgerService posts and reverses journal entries.
type ledgerService struct {
	BaseService
	provider portsrepo.RepositoryProvider
}

// NewLedgerService creates a new LedgerSvcFacade.
func NewLedgerService(provider portsrepo.RepositoryProvider, opts ...Option) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(opts...),
		provider:    provider,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateBalancedEntry posts a manual entry. Lines are checked before a transaction is opened.
func (s *ledgerService) CreateBalancedEntry(ctx context.Context, actor domain.Actor, req domain.NewJournalEntry) (*domain.JournalEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}
	if req.EntryDate.IsZero() {
		return nil, validationError("entry date is required")
	}
	if err := accounting.ValidateLines(req.Lines); err != nil {
		s.LogDebug(ctx, "Rejected journal entry", slog.String("error", err.Error()))
		return nil, err
	}
	if req.ReferenceType == "" {
		req.ReferenceType = domain.RefManual
	}

	var posted *domain.JournalEntry
	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		entry, err := postEntry(ctx, repos, newAccountResolver(repos.Accounts()), postRequest{
			entry:     req,
			createdBy: actor.UserID,
			createdAt: s.now(),
		})
		if err != nil {
			return err
		}
		posted = entry
		return appendAudit(ctx, repos, domain.AuditCreateJournalEntry, "journal_entry", entry.EntryID, actor.UserID, s.now(),
			map[string]any{"reference_type": string(entry.ReferenceType), "line_count": len(entry.Lines)})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create journal entry")
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created", slog.String("entry_id", posted.EntryID))
	return posted, nil
}

// Reverse posts the mirror image of entryID. An entry can be reversed once, and a reversal
// cannot itself be reversed.
func (s *ledgerService) Reverse(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceWrite); err != nil {
		return nil, err
	}

	var reversal *domain.JournalEntry
	err := s.provider.TxManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		original, err := repos.Journals().FindEntryByID(ctx, entryID)
		if err != nil {
			return err
		}
		if original.IsReversal {
			return ErrReversalOfReversal
		}

		existing, err := repos.Journals().FindReversalOf(ctx, entryID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: reversed by %s", ErrAlreadyReversed, existing.EntryID)
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}

		reversedID := original.EntryID
		entry, err := postEntry(ctx, repos, newAccountResolver(repos.Accounts()), postRequest{
			entry: domain.NewJournalEntry{
				EntryDate:     original.EntryDate,
				Description:   fmt.Sprintf("Reversal of JE %s", original.EntryID),
				ReferenceType: domain.RefReversal,
				ReferenceID:   original.EntryID,
				Lines:         accounting.SwapSides(original.Lines),
			},
			createdBy:  actor.UserID,
			createdAt:  s.now(),
			reversalOf: &reversedID,
		})
		if err != nil {
			// a concurrent reversal won the unique index
			if errors.Is(err, apperrors.ErrDuplicate) {
				return ErrAlreadyReversed
			}
			return err
		}
		reversal = entry
		return appendAudit(ctx, repos, domain.AuditReverseEntry, "journal_entry", entry.EntryID, actor.UserID, s.now(),
			map[string]any{"reversal_of": original.EntryID})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_id", reversal.EntryID))
	return reversal, nil
}

func (s *ledgerService) GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.JournalEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	entry, err := s.provider.Repos.Journals().FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, actor domain.Actor, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultEntryPageSize
	}
	if limit > maxEntryPageSize {
		limit = maxEntryPageSize
	}
	entries, token, err := s.provider.Repos.Journals().ListEntries(ctx, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, nil, err
	}
	return entries, token, nil
}
