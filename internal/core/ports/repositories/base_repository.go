package repositories

import "context"

// TxFunc is a unit of work. Every repository reached through repos shares one database transaction.
type TxFunc func(ctx context.Context, repos Repositories) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn TxFunc) error

	// WithinReadTx runs fn against a single read-only snapshot.
	WithinReadTx(ctx context.Context, fn TxFunc) error
}
