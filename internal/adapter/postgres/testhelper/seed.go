package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and an opening balance of 1000.00.
// The password hash is a placeholder; tests that log in go through the auth service.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:             uuid.New(),
		Email:          "testuser-" + suffix + "@example.com",
		PasswordHash:   "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		Role:           role,
		Name:           "Test User " + suffix,
		AccountNumber:  "40817" + suffix,
		OpeningBalance: decimal.RequireFromString("1000.00"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, name, account_number, opening_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.Name, user.AccountNumber,
		user.OpeningBalance.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTransaction inserts a Pending transaction for owner with the given amount.
func SeedTransaction(t *testing.T, pool *pgxpool.Pool, owner domain.User, amount string) domain.Transaction {
	t.Helper()
	ctx := context.Background()

	tx := domain.Transaction{
		ID:          uuid.New(),
		OwnerID:     owner.ID,
		OwnerEmail:  owner.Email,
		Amount:      decimal.RequireFromString(amount),
		Description: domain.DefaultTransactionDescription,
		Status:      domain.TransactionPending,
		CreatedAt:   time.Now().UnixMilli(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO transactions (id, owner_id, amount, description, status, created_at_ms)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, tx.OwnerID, tx.Amount.String(), tx.Description, string(tx.Status), tx.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTransaction insert: %v", err)
	}

	return tx
}

// SeedMessage inserts an unread message from one user to another.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, from, to domain.User, content string) domain.Message {
	t.Helper()
	ctx := context.Background()

	msg := domain.Message{
		ID:        uuid.New(),
		FromID:    from.ID,
		FromEmail: from.Email,
		ToID:      to.ID,
		ToEmail:   to.Email,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, from_id, to_id, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.FromID, msg.ToID, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}
