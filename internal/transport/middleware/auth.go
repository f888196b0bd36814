package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves the caller's identity from the Authorization bearer header,
// falling back to the session cookie. Requests without a token pass through
// anonymously; a token that fails validation is rejected with 401.
func Auth(validator tokenValidator, cookieName string) Middleware {
	return authenticate(validator, cookieName, true)
}

// OptionalAuth is Auth for endpoints that must work with a stale session,
// such as login and logout: an invalid token is ignored and the request
// continues anonymously.
func OptionalAuth(validator tokenValidator, cookieName string) Middleware {
	return authenticate(validator, cookieName, false)
}

func authenticate(validator tokenValidator, cookieName string, strict bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if strict {
					writeError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken returns the bearer token, or the cookie value when no
// Authorization header is present.
func ExtractToken(r *http.Request, cookieName string) string {
	if token := extractBearerToken(r); token != "" {
		return token
	}
	if cookieName == "" {
		return ""
	}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
