package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// Approve completes a Pending transaction (admin only) and notifies its owner.
// Returns ErrForbidden for non-admins, ErrNotFound for unknown ids and
// ErrConflict when the transaction was already decided.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	updated, err := s.decide(ctx, id, domain.TransactionCompleted)
	if err != nil {
		return nil, fmt.Errorf("transaction.Approve: %w", err)
	}

	s.events.TransactionUpdated(updated)

	return updated, nil
}

// Decline rejects a Pending transaction (admin only) and notifies its owner.
// With ForceSessionEnd the owner's clients are also asked to log out.
func (s *Service) Decline(ctx context.Context, id uuid.UUID, input DeclineInput) (*domain.Transaction, error) {
	updated, err := s.decide(ctx, id, domain.TransactionDeclined)
	if err != nil {
		return nil, fmt.Errorf("transaction.Decline: %w", err)
	}

	s.events.TransactionUpdated(updated)
	if input.ForceSessionEnd {
		s.events.ForceLogout(updated.OwnerID, api.ForceLogoutDeclined)
		s.log.InfoContext(ctx, "forced logout requested",
			slog.String("user_id", updated.OwnerID.String()))
	}

	return updated, nil
}

func (s *Service) decide(ctx context.Context, id uuid.UUID, next domain.TransactionStatus) (*domain.Transaction, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Transaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.ledger.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("transaction %s is %s: %w", id, current.Status, domain.ErrConflict)
		}

		if next == domain.TransactionCompleted {
			updated, err = s.ledger.Approve(txCtx, id, caller.ID)
		} else {
			updated, err = s.ledger.Decline(txCtx, id, caller.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "transaction decided",
		slog.String("transaction_id", id.String()),
		slog.String("status", updated.Status.String()),
		slog.String("admin_id", caller.ID.String()))

	return updated, nil
}
