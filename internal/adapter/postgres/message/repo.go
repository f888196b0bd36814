// Package message implements the chat message repository using PostgreSQL.
package message

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectView projects messages joined with sender and recipient emails.
var selectView = builder.
	Select("m.id", "m.from_id", "f.email AS from_email", "m.to_id", "r.email AS to_email",
		"m.content", "m.created_at", "m.read").
	From("messages m").
	Join("users f ON f.id = m.from_id").
	Join("users r ON r.id = m.to_id")

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a message and returns it with both participant emails.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	insert := builder.Insert("messages").
		Columns("id", "from_id", "to_id", "content", "created_at", "read").
		Values(m.ID, m.FromID, m.ToID, m.Content, m.CreatedAt, false)

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}

	return r.GetByID(ctx, m.ID)
}

// GetByID returns a message by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	sql, args, err := selectView.Where(squirrel.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row messageRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", id)
	}

	return row.toDomain(), nil
}

// ListConversation returns messages exchanged between a and b, oldest first.
func (r *Repo) ListConversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error) {
	query := selectView.
		Where(squirrel.Or{
			squirrel.Eq{"m.from_id": a, "m.to_id": b},
			squirrel.Eq{"m.from_id": b, "m.to_id": a},
		}).
		OrderBy("m.created_at ASC", "m.id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []messageRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}

	msgs := make([]*domain.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, row.toDomain())
	}
	return msgs, nil
}

// MarkRead flags a message addressed to recipientID as read.
// Returns domain.ErrNotFound if no such message is addressed to recipientID.
func (r *Repo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Message, error) {
	update := builder.Update("messages").
		Set("read", true).
		Where(squirrel.Eq{"id": id, "to_id": recipientID})

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

type messageRow struct {
	ID        uuid.UUID `db:"id"`
	FromID    uuid.UUID `db:"from_id"`
	FromEmail string    `db:"from_email"`
	ToID      uuid.UUID `db:"to_id"`
	ToEmail   string    `db:"to_email"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	Read      bool      `db:"read"`
}

func (row messageRow) toDomain() *domain.Message {
	return &domain.Message{
		ID:        row.ID,
		FromID:    row.FromID,
		FromEmail: row.FromEmail,
		ToID:      row.ToID,
		ToEmail:   row.ToEmail,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Read:      row.Read,
	}
}
