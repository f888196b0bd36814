package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

type roleResolver interface {
	CurrentRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
// The token's admin claim is confirmed against the stored role, so a demoted
// admin loses access before the old token expires.
func RequireAdmin(roles roleResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := ctxutil.IdentityFromCtx(r.Context())
			if !id.IsAdmin() {
				writeError(w, http.StatusForbidden, "Admin role required")
				return
			}

			role, err := roles.CurrentRole(r.Context(), id.ID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			case err != nil:
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			case role != domain.UserRoleAdmin:
				writeError(w, http.StatusForbidden, "Admin role required")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
