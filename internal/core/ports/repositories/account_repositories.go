package repositories

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByCode returns apperrors.ErrNotFound when no account has the code.
	FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// InsertAccountsIfAbsent inserts every account whose code is not yet present and
	// reports how many rows were created. Existing accounts are left untouched.
	InsertAccountsIfAbsent(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
