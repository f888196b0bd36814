package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Create stores a new Pending transaction for the caller and broadcasts it.
// An empty description defaults to "Money Transfer".
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Transaction, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Description = domain.CompactSpaces(input.Description)
	if input.Description == "" {
		input.Description = domain.DefaultTransactionDescription
	}

	if err := input.Validate(s.bank.MaxAmount); err != nil {
		return nil, err
	}

	created, err := s.ledger.Create(ctx, &domain.Transaction{
		ID:          uuid.New(),
		OwnerID:     caller.ID,
		OwnerEmail:  caller.Email,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      domain.TransactionPending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("transaction.Create: %w", err)
	}

	s.events.TransactionCreated(created)

	s.log.InfoContext(ctx, "transaction created",
		slog.String("transaction_id", created.ID.String()),
		slog.String("owner_id", created.OwnerID.String()),
		slog.String("amount", created.Amount.String()))

	return created, nil
}

// List returns the caller's transactions, or every transaction for admins,
// newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Transaction, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		txs []*domain.Transaction
		err error
	)
	if caller.IsAdmin() {
		txs, err = s.ledger.ListAll(ctx)
	} else {
		txs, err = s.ledger.ListByOwner(ctx, caller.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("transaction.List: %w", err)
	}

	return txs, nil
}

// Get returns one transaction. Non-admins only see their own; other
// transactions are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tx, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transaction.Get: %w", err)
	}

	if !caller.IsAdmin() && !tx.IsOwnedBy(caller.ID) {
		return nil, fmt.Errorf("transaction.Get: transaction %s: %w", id, domain.ErrNotFound)
	}

	return tx, nil
}
