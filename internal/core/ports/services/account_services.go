package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// ChartOfAccountsSvc manages the fixed chart of accounts.
type ChartOfAccountsSvc interface {
	// EnsureDefaults inserts any missing default account. Safe to call repeatedly.
	EnsureDefaults(ctx context.Context) error

	// Lookup resolves an account by code, failing with ErrAccountNotConfigured.
	Lookup(ctx context.Context, code domain.AccountCode) (*domain.Account, error)

	ListAccounts(ctx context.Context, actor domain.Actor) ([]domain.Account, error)
}
