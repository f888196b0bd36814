// Package user implements the account repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "password_hash", "role", "name", "account_number", "phone",
	"avatar_url", "opening_balance::text AS opening_balance", "created_at", "updated_at",
}

const returning = "RETURNING id, email, password_hash, role, name, account_number, phone, " +
	"avatar_url, opening_balance::text AS opening_balance, created_at, updated_at"

// builder produces PostgreSQL ($1) placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder.Select(columns...).From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", email))

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// EmailTaken reports whether email belongs to a user other than exceptID.
func (r *Repo) EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	query := builder.Select("1").From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Where(squirrel.NotEq{"id": exceptID}).
		Prefix("SELECT EXISTS(").Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var taken bool
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		return false, postgres.MapError(err, "user", exceptID)
	}
	return taken, nil
}

// List returns all users ordered by email.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	query := builder.Select(columns...).From(table).OrderBy("email ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []userRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the stored row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := builder.Insert(table).
		Columns("id", "email", "password_hash", "role", "name", "account_number", "phone",
			"avatar_url", "opening_balance", "created_at", "updated_at").
		Values(u.ID, u.Email, u.PasswordHash, string(u.Role), u.Name, u.AccountNumber, u.Phone,
			u.AvatarURL, u.OpeningBalance.String(), u.CreatedAt, u.UpdatedAt).
		Suffix(returning)

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateProfile overwrites the non-nil fields of changes and bumps updated_at.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, changes domain.ProfileChanges) (*domain.User, error) {
	query := builder.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	if changes.Email != nil {
		query = query.Set("email", *changes.Email)
	}
	if changes.Name != nil {
		query = query.Set("name", *changes.Name)
	}
	if changes.AccountNumber != nil {
		query = query.Set("account_number", *changes.AccountNumber)
	}
	if changes.Phone != nil {
		query = query.Set("phone", *changes.Phone)
	}
	if changes.AvatarURL != nil {
		if *changes.AvatarURL == "" {
			query = query.Set("avatar_url", nil)
		} else {
			query = query.Set("avatar_url", *changes.AvatarURL)
		}
	}

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	query := builder.Update(table).
		Set("password_hash", hash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateRole sets the role of a user and returns the updated row.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	query := builder.Update(table).
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return updated, nil
}

// DuplicateEmails returns lower-cased emails held by more than one account.
// The unique index prevents new duplicates; this checks imported data.
func (r *Repo) DuplicateEmails(ctx context.Context) ([]string, error) {
	query := builder.Select("lower(email)").From(table).
		GroupBy("lower(email)").
		Having("count(*) > 1").
		OrderBy("lower(email)")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var emails []string
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Select(ctx, q, &emails, sql, args...); err != nil {
		return nil, fmt.Errorf("duplicate emails: %w", err)
	}
	return emails, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) getOne(ctx context.Context, query sqlizer) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain()
}

type userRow struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	Role           string    `db:"role"`
	Name           string    `db:"name"`
	AccountNumber  string    `db:"account_number"`
	Phone          string    `db:"phone"`
	AvatarURL      *string   `db:"avatar_url"`
	OpeningBalance string    `db:"opening_balance"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row userRow) toDomain() (*domain.User, error) {
	opening, err := decimal.NewFromString(row.OpeningBalance)
	if err != nil {
		return nil, fmt.Errorf("user %s: parse opening balance %q: %w", row.ID, row.OpeningBalance, err)
	}

	return &domain.User{
		ID:             row.ID,
		Email:          row.Email,
		PasswordHash:   row.PasswordHash,
		Role:           domain.UserRole(row.Role),
		Name:           row.Name,
		AccountNumber:  row.AccountNumber,
		Phone:          row.Phone,
		AvatarURL:      row.AvatarURL,
		OpeningBalance: opening,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
