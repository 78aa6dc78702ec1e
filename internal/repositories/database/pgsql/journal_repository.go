package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/SscSPs/retail_finance_core/internal/models"
	"github.com/SscSPs/retail_finance_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type PgxJournalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_date, description, reference_type, reference_id, is_reversal, reversal_of_entry_id, created_at, created_by`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.IsReversal,
		&m.ReversalOfEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// SaveEntry inserts the header and queues every line in one batch. Callers run it inside
// a unit of work so header and lines commit together.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := models.FromDomainJournalEntry(entry)

	headerQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, headerQuery,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.IsReversal,
		m.ReversalOfEntryID,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return mapWriteError(err, "insert journal entry "+m.EntryID)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, line_no, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range entry.Lines {
		batch.Queue(lineQuery, line.LineID, m.EntryID, line.LineNo, line.AccountID, line.Debit, line.Credit)
	}

	br := r.DB.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapWriteError(err, "insert lines for journal entry "+m.EntryID)
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines ordered by line number.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.DB.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapReadError(err, "journal entry", entryID)
	}
	return r.withLines(ctx, m)
}

func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE reversal_of_entry_id = $1;`
	m, err := scanEntry(r.DB.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapReadError(err, "reversal of journal entry", entryID)
	}
	return r.withLines(ctx, m)
}

func (r *PgxJournalRepository) withLines(ctx context.Context, m models.JournalEntry) (*domain.JournalEntry, error) {
	lines, err := r.linesFor(ctx, []string{m.EntryID})
	if err != nil {
		return nil, err
	}
	entry := m.ToDomain()
	if ls, ok := lines[m.EntryID]; ok {
		entry.Lines = ls
	}
	return &entry, nil
}

// linesFor loads the lines of several entries in one round trip, keyed by entry id.
func (r *PgxJournalRepository) linesFor(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.line_no, l.account_id, a.code, l.debit, l.credit
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_no;
	`
	rows, err := r.DB.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapWriteError(err, "query journal lines")
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.LineNo, &l.AccountID, &l.AccountCode, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		result[l.EntryID] = append(result[l.EntryID], l.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, mapWriteError(err, "iterate journal lines")
	}
	return result, nil
}

// ListEntries pages through entries newest first. The token is the keyset position of the
// last entry returned.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// one extra row tells us whether another page exists
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM journal_entries`
	orderByClause := `ORDER BY entry_date DESC, created_at DESC, entry_id DESC`
	args := []any{}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		query += ` WHERE (entry_date, created_at, entry_id) < ($1, $2, $3)`
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapWriteError(err, "list journal entries")
	}
	defer rows.Close()

	headers := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapWriteError(err, "iterate journal entries")
	}
	rows.Close()

	var nextTokenVal *string
	if len(headers) > limit {
		last := headers[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		nextTokenVal = &token
		headers = headers[:limit]
	}

	ids := make([]string, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.EntryID)
	}
	lines := map[string][]domain.JournalLine{}
	if len(ids) > 0 {
		if lines, err = r.linesFor(ctx, ids); err != nil {
			return nil, nil, err
		}
	}

	entries := make([]domain.JournalEntry, 0, len(headers))
	for _, h := range headers {
		e := h.ToDomain()
		if ls, ok := lines[h.EntryID]; ok {
			e.Lines = ls
		}
		entries = append(entries, e)
	}
	return entries, nextTokenVal, nil
}
