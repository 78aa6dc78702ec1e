package pgsql

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store opens database transactions and hands every repository the same pgx.Tx.
type Store struct {
	pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// WithinTx runs fn in a read committed transaction. Writes that must serialize lock
// rows explicitly (see FindPayrollByIDForUpdate).
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return s.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinReadTx runs fn against one repeatable read snapshot so multi-query reports are consistent.
func (s *Store) WithinReadTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return s.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (s *Store) run(ctx context.Context, opts pgx.TxOptions, fn portsrepo.TxFunc) error {
	tx, err := s.pool.BeginTx(ctx, opts)
	if err != nil {
		return apperrors.NewRetryableError("failed to begin transaction", err)
	}

	committed := false
	defer func() {
		if !committed {
			rollback(ctx, tx)
		}
	}()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, "commit transaction")
	}
	committed = true
	return nil
}
