package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the authenticated user's profile. When the email
// changes, uniqueness is re-checked case-insensitively (ErrConflict), a new
// access token is issued and pushed to the user's live connections.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*ProfileResult, error) {
	input = input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Re-check email uniqueness and update in one transaction
	var before, after *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		before = current

		if input.Email != nil && *input.Email != current.Email {
			taken, err := s.users.EmailTaken(txCtx, *input.Email, userID)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if taken {
				return fmt.Errorf("email %s: %w", *input.Email, domain.ErrConflict)
			}
		}

		updated, err := s.users.UpdateProfile(txCtx, userID, input.changes())
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("email: %w", domain.ErrConflict)
			}
			return fmt.Errorf("update profile: %w", err)
		}
		after = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	result := &ProfileResult{User: after}

	// Step 4: Reissue the token and rekey live connections on email change
	if after.Email != before.Email {
		token, err := s.tokens.IssueToken(after)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile issue token: %w", err)
		}
		result.Token = token
		s.sessions.SessionUpdated(before.Email, after, token)

		s.log.InfoContext(ctx, "email changed",
			slog.String("user_id", userID.String()))
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return result, nil
}

// Balance returns the caller's opening balance plus the sum of their
// non-declined transactions.
func (s *Service) Balance(ctx context.Context) (*BalanceResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Balance: %w", err)
	}

	sum, err := s.ledger.SumActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Balance: %w", err)
	}

	return &BalanceResult{
		Opening: user.OpeningBalance,
		Balance: user.OpeningBalance.Add(sum),
	}, nil
}
