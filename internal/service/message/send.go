package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// Send stores a message from the caller to the recipient and pushes it to
// both participants. There is no allow-list: any identity may message any other.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Message, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	to, err := s.users.GetByEmail(ctx, input.ToEmail)
	if err != nil {
		return nil, fmt.Errorf("message.Send: recipient: %w", err)
	}

	created, err := s.messages.Create(ctx, &domain.Message{
		ID:        uuid.New(),
		FromID:    caller.ID,
		FromEmail: caller.Email,
		ToID:      to.ID,
		ToEmail:   to.Email,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("message.Send: %w", err)
	}

	s.events.MessageCreated(created)

	s.log.InfoContext(ctx, "message sent",
		slog.String("message_id", created.ID.String()),
		slog.String("from_id", created.FromID.String()),
		slog.String("to_id", created.ToID.String()))

	return created, nil
}

// MarkRead marks a message as read. Only its recipient may do so; repeating
// the call is harmless.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("message.MarkRead: %w", err)
	}
	if current.ToID != caller.ID {
		return nil, domain.ErrForbidden
	}
	if current.Read {
		return current, nil
	}

	updated, err := s.messages.MarkRead(ctx, id, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("message.MarkRead: %w", err)
	}

	return updated, nil
}
