package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, account_type`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	var code, accountType string
	if err := row.Scan(&acc.AccountID, &code, &acc.Name, &accountType); err != nil {
		return domain.Account{}, err
	}
	acc.Code = domain.AccountCode(code)
	acc.AccountType = domain.AccountType(accountType)
	return acc, nil
}

// FindAccountByCode retrieves an account by its chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code domain.AccountCode) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	acc, err := scanAccount(r.DB.QueryRow(ctx, query, string(code)))
	if err != nil {
		return nil, mapReadError(err, "account", string(code))
	}
	return &acc, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code;`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, mapWriteError(err, "list accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate accounts")
	}
	return accounts, nil
}

// InsertAccountsIfAbsent queues one conflict-tolerant insert per account and counts the rows created.
func (r *PgxAccountRepository) InsertAccountsIfAbsent(ctx context.Context, accounts []domain.Account) (int, error) {
	if len(accounts) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO accounts (account_id, code, name, account_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		batch.Queue(query, acc.AccountID, string(acc.Code), acc.Name, string(acc.AccountType))
	}

	br := r.DB.SendBatch(ctx, batch)
	defer br.Close()

	created := 0
	for range accounts {
		tag, err := br.Exec()
		if err != nil {
			return created, mapWriteError(err, "insert default accounts")
		}
		created += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return created, mapWriteError(err, "insert default accounts")
	}
	return created, nil
}
