package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// List returns the conversation between input.User and input.With, oldest
// first. The requester must be one of the two participants unless they are
// an admin.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Message, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.With == "" {
		input.With = domain.NormalizeEmail(caller.Email)
	}

	callerEmail := domain.NormalizeEmail(caller.Email)
	if !caller.IsAdmin() && input.User != callerEmail && input.With != callerEmail {
		return nil, domain.ErrForbidden
	}

	a, err := s.resolve(ctx, caller, input.User)
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}
	b, err := s.resolve(ctx, caller, input.With)
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}

	msgs, err := s.messages.ListConversation(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}

	return msgs, nil
}

// resolve maps an email to an identity id, skipping the lookup for the caller.
func (s *Service) resolve(ctx context.Context, caller domain.Identity, email string) (uuid.UUID, error) {
	if email == domain.NormalizeEmail(caller.Email) {
		return caller.ID, nil
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}
