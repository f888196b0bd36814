package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// SetUserRole promotes or demotes an account. The target's live connections
// receive a session:update carrying a token with the new role, since the
// role travels inside the stateless token. Setting the current role is a
// no-op and pushes nothing.
func (s *Service) SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !caller.Role.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be user or admin")
	}
	if caller.ID == targetID && !role.IsAdmin() {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	current, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if current.Role == role {
		return current, nil
	}

	updated, err := s.users.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("user_id", targetID.String()),
		slog.String("from", current.Role.String()),
		slog.String("to", role.String()),
		slog.String("by", caller.ID.String()),
	)

	token, err := s.tokens.IssueToken(updated)
	if err != nil {
		// The change is stored; clients pick it up on next login.
		s.log.WarnContext(ctx, "role changed but token not reissued", slog.String("error", err.Error()))
		return updated, nil
	}
	s.sessions.SessionUpdated(updated.Email, updated, token)

	return updated, nil
}

// ListUsers returns every account ordered by email.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Presence snapshots the realtime registry for the admin dashboard.
func (s *Service) Presence(ctx context.Context) (*PresenceResult, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	online, total := s.sessions.Online()
	return &PresenceResult{Online: online, Total: total}, nil
}
