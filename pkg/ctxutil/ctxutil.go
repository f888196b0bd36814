// Package ctxutil carries request-scoped values (authenticated identity,
// request id) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

type (
	identityKey  struct{}
	requestIDKey struct{}
)

// WithIdentity attaches the authenticated caller. An identity with a nil id
// is treated as anonymous by the readers below.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx returns the caller stored by WithIdentity. Unknown roles
// read back as UserRoleUser so a malformed value never grants admin.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	if !ok || id.ID == uuid.Nil {
		return domain.Identity{}, false
	}
	if !id.Role.IsValid() {
		id.Role = domain.UserRoleUser
	}
	return id, true
}

// UserIDFromCtx is IdentityFromCtx reduced to the user id.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := IdentityFromCtx(ctx)
	return id.ID, ok
}

// IsAdminCtx reports whether the caller is an authenticated admin.
func IsAdminCtx(ctx context.Context) bool {
	id, ok := IdentityFromCtx(ctx)
	return ok && id.Role.IsAdmin()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
