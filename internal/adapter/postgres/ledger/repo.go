// Package ledger implements the transaction repository using PostgreSQL.
// All queries use raw SQL: every read joins users to project owner and
// decision-maker emails, and status transitions are conditional updates.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const txColumns = `t.id, t.owner_id, o.email, t.amount::text, t.description, t.status, t.created_at_ms,
       t.approved_by, a.email, t.declined_by, d.email`

const txJoins = `
JOIN users o ON o.id = t.owner_id
LEFT JOIN users a ON a.id = t.approved_by
LEFT JOIN users d ON d.id = t.declined_by`

const createSQL = `
WITH t AS (
    INSERT INTO transactions (id, owner_id, amount, description, status, created_at_ms)
    VALUES ($1, $2, $3, $4, 'Pending', $5)
    RETURNING *
)
SELECT ` + txColumns + `
FROM t` + txJoins

const getByIDSQL = `
SELECT ` + txColumns + `
FROM transactions t` + txJoins + `
WHERE t.id = $1`

const listAllSQL = `
SELECT ` + txColumns + `
FROM transactions t` + txJoins + `
ORDER BY t.created_at_ms DESC, t.id DESC`

const listByOwnerSQL = `
SELECT ` + txColumns + `
FROM transactions t` + txJoins + `
WHERE t.owner_id = $1
ORDER BY t.created_at_ms DESC, t.id DESC`

const approveSQL = `
WITH t AS (
    UPDATE transactions
    SET status = 'Completed', approved_by = $2, updated_at = now()
    WHERE id = $1 AND status = 'Pending'
    RETURNING *
)
SELECT ` + txColumns + `
FROM t` + txJoins

const declineSQL = `
WITH t AS (
    UPDATE transactions
    SET status = 'Declined', declined_by = $2, updated_at = now()
    WHERE id = $1 AND status = 'Pending'
    RETURNING *
)
SELECT ` + txColumns + `
FROM t` + txJoins

const existsSQL = `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`

const sumActiveSQL = `
SELECT COALESCE(SUM(amount), 0)::text
FROM transactions
WHERE owner_id = $1 AND status <> 'Declined'`

const countSQL = `SELECT count(*) FROM transactions`

const deleteAllSQL = `DELETE FROM transactions`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a transaction by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tx, err := scanTransaction(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return tx, nil
}

// ListAll returns every transaction, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return txs, nil
}

// ListByOwner returns the transactions owned by ownerID, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Transaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by owner: %w", err)
	}
	defer rows.Close()

	txs, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("list transactions by owner: %w", err)
	}

	return txs, nil
}

// SumActive returns the sum of amounts of the owner's non-declined transactions.
func (r *Repo) SumActive(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var raw string
	if err := querier.QueryRow(ctx, sumActiveSQL, ownerID).Scan(&raw); err != nil {
		return decimal.Zero, postgres.MapError(err, "balance", ownerID)
	}

	sum, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance %s: parse sum %q: %w", ownerID, raw, err)
	}

	return sum, nil
}

// Count returns the number of stored transactions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := querier.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new Pending transaction and returns it with the owner email.
// Returns domain.ErrNotFound if the owner does not exist.
func (r *Repo) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		tx.ID,
		tx.OwnerID,
		tx.Amount.StringFixed(2),
		tx.Description,
		tx.CreatedAt,
	)

	created, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", tx.ID)
	}

	return created, nil
}

// Approve moves a Pending transaction to Completed on behalf of adminID.
// Returns domain.ErrNotFound if it does not exist and domain.ErrConflict if it
// is no longer Pending.
func (r *Repo) Approve(ctx context.Context, id, adminID uuid.UUID) (*domain.Transaction, error) {
	return r.transition(ctx, approveSQL, id, adminID)
}

// Decline moves a Pending transaction to Declined on behalf of adminID.
// Returns domain.ErrNotFound if it does not exist and domain.ErrConflict if it
// is no longer Pending.
func (r *Repo) Decline(ctx context.Context, id, adminID uuid.UUID) (*domain.Transaction, error) {
	return r.transition(ctx, declineSQL, id, adminID)
}

func (r *Repo) transition(ctx context.Context, sql string, id, adminID uuid.UUID) (*domain.Transaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tx, err := scanTransaction(querier.QueryRow(ctx, sql, id, adminID))
	if err == nil {
		return tx, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "transaction", id)
	}

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}
	if !exists {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}

	return nil, fmt.Errorf("transaction %s: already decided: %w", id, domain.ErrConflict)
}

// DeleteAll removes every transaction and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteAllSQL)
	if err != nil {
		return 0, fmt.Errorf("delete transactions: %w", err)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction scans a single joined transaction row.
func scanTransaction(row scanner) (*domain.Transaction, error) {
	var (
		id            uuid.UUID
		ownerID       uuid.UUID
		ownerEmail    string
		amount        string
		description   string
		status        string
		createdAt     int64
		approvedBy    *uuid.UUID
		approvedEmail *string
		declinedBy    *uuid.UUID
		declinedEmail *string
	)

	if err := row.Scan(&id, &ownerID, &ownerEmail, &amount, &description, &status, &createdAt,
		&approvedBy, &approvedEmail, &declinedBy, &declinedEmail); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: parse amount %q: %w", id, amount, err)
	}

	return &domain.Transaction{
		ID:          id,
		OwnerID:     ownerID,
		OwnerEmail:  ownerEmail,
		Amount:      parsed,
		Description: description,
		Status:      domain.TransactionStatus(status),
		CreatedAt:   createdAt,
		ApprovedBy:  toRef(approvedBy, approvedEmail),
		DeclinedBy:  toRef(declinedBy, declinedEmail),
	}, nil
}

// scanTransactions scans rows into a slice; the result is never nil.
func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}

func toRef(id *uuid.UUID, email *string) *domain.IdentityRef {
	if id == nil {
		return nil
	}
	ref := &domain.IdentityRef{ID: *id}
	if email != nil {
		ref.Email = *email
	}
	return ref
}
