package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository runs
// unchanged inside or outside a unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB querier
}

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// mapWriteError translates a failed statement into the application error taxonomy.
func mapWriteError(err error, action string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s: %s", apperrors.ErrDuplicate, action, pgErr.ConstraintName)
		case pgForeignKeyViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, action, pgErr.ConstraintName)
		case pgSerializationFailure, pgDeadlockDetected:
			return apperrors.NewRetryableError("failed to "+action, err)
		}
		return apperrors.NewAppError(500, "failed to "+action, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// anything that never reached the server is a connection problem
	return apperrors.NewRetryableError("failed to "+action, err)
}

// mapReadError maps pgx.ErrNoRows to a not found error for the entity.
func mapReadError(err error, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity, id)
	}
	return mapWriteError(err, "query "+entity+" "+id)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.ErrorContext(ctx, "failed to rollback transaction", "error", err)
	}
}
