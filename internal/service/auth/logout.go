package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

// Logout ends the caller's session. Tokens are stateless, so this only
// records the event; the transport clears the cookie.
// Returns ErrUnauthorized if no identity is found in context.
func (s *Service) Logout(ctx context.Context) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", id.ID.String()))
	return nil
}

// ValidateToken validates an access token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	sub, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Identity{}, domain.ErrUnauthorized
	}

	role := domain.UserRole(sub.Role)
	if !role.IsValid() {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	return domain.Identity{ID: sub.UserID, Email: sub.Email, Role: role}, nil
}

// VerifyToken is the non-failing form of ValidateToken used by the realtime
// handshake: an invalid or expired token yields ok=false. The email and role
// are reloaded by id, so a token minted before a profile or role change binds
// the connection under the account's current values.
func (s *Service) VerifyToken(ctx context.Context, token string) (domain.Identity, bool) {
	if token == "" {
		return domain.Identity{}, false
	}
	id, err := s.ValidateToken(ctx, token)
	if err != nil {
		return domain.Identity{}, false
	}

	user, err := s.users.GetByID(ctx, id.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "resolve token subject",
				slog.String("user_id", id.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return domain.Identity{}, false
	}
	return user.Identity(), true
}

// CurrentRole returns the stored role of userID. Admin routes use it so a
// demotion takes effect before previously issued tokens expire.
func (s *Service) CurrentRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("auth.CurrentRole: %w", err)
	}
	return user.Role, nil
}
