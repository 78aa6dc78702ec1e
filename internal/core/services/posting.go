package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountResolver memoises code lookups for the lifetime of one unit of work.
type accountResolver struct {
	reader portsrepo.AccountReader
	cache  map[domain.AccountCode]*domain.Account
}

func newAccountResolver(reader portsrepo.AccountReader) *accountResolver {
	return &accountResolver{reader: reader, cache: make(map[domain.AccountCode]*domain.Account)}
}

func (r *accountResolver) resolve(ctx context.Context, code domain.AccountCode) (*domain.Account, error) {
	if acc, ok := r.cache[code]; ok {
		return acc, nil
	}
	acc, err := r.reader.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: code %s", ErrAccountNotConfigured, code)
		}
		return nil, err
	}
	r.cache[code] = acc
	return acc, nil
}

// ensureDefaultAccounts inserts the fixed chart where codes are missing.
func ensureDefaultAccounts(ctx context.Context, writer portsrepo.AccountWriter) (int, error) {
	chart := domain.DefaultChart()
	for i := range chart {
		chart[i].AccountID = uuid.NewString()
	}
	created, err := writer.InsertAccountsIfAbsent(ctx, chart)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure default accounts: %w", err)
	}
	return created, nil
}

// postRequest is one balanced entry about to be written by a unit of work.
type postRequest struct {
	entry      domain.NewJournalEntry
	createdBy  string
	createdAt  time.Time
	reversalOf *string
}

// postEntry validates and persists a journal entry inside the caller's transaction.
// Nothing is written unless every line resolves and the entry balances.
func postEntry(ctx context.Context, repos portsrepo.Repositories, resolver *accountResolver, req postRequest) (*domain.JournalEntry, error) {
	if err := accounting.ValidateLines(req.entry.Lines); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.entry.Description) == "" {
		return nil, ErrDescriptionMissing
	}

	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, 0, len(req.entry.Lines))
	for i, l := range req.entry.Lines {
		acc, err := resolver.resolve(ctx, l.AccountCode)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			LineNo:      i + 1,
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}

	entry := domain.JournalEntry{
		EntryID:           entryID,
		EntryDate:         domain.DateOnly(req.entry.EntryDate),
		Description:       strings.TrimSpace(req.entry.Description),
		ReferenceType:     req.entry.ReferenceType,
		ReferenceID:       req.entry.ReferenceID,
		IsReversal:        req.reversalOf != nil,
		ReversalOfEntryID: req.reversalOf,
		Lines:             lines,
		AuditFields: domain.AuditFields{
			CreatedAt: req.createdAt,
			CreatedBy: req.createdBy,
		},
	}

	if err := repos.Journals().SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return &entry, nil
}

// appendAudit writes one audit trail record in the caller's transaction.
func appendAudit(ctx context.Context, repos portsrepo.Repositories, action, entityType, entityID, actorID string, at time.Time, metadata map[string]any) error {
	err := repos.AuditLogs().AppendAuditLog(ctx, domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		ActorUserID: actorID,
		Metadata:    metadata,
		CreatedAt:   at,
	})
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// recordCash appends a cash movement against the account behind code.
func recordCash(ctx context.Context, repos portsrepo.Repositories, resolver *accountResolver, code domain.AccountCode, direction domain.CashDirection, ref domain.CashReferenceType, refID string, amount decimal.Decimal, at time.Time) error {
	acc, err := resolver.resolve(ctx, code)
	if err != nil {
		return err
	}
	err = repos.CashTransactions().SaveCashTransaction(ctx, domain.CashTransaction{
		CashTransactionID: uuid.NewString(),
		AccountID:         acc.AccountID,
		Direction:         direction,
		ReferenceType:     ref,
		ReferenceID:       refID,
		Amount:            amount,
		CreatedAt:         at,
	})
	if err != nil {
		return fmt.Errorf("failed to record cash transaction: %w", err)
	}
	return nil
}
