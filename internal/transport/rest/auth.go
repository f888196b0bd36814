package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/internal/service/auth"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	svc    authService
	cookie sessionCookie
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: newSessionCookie(cfg), log: logger.With("handler", "auth")}
}

// Login handles POST /api/login. On success the token is returned in the
// body and set as an httpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	h.cookie.set(w, result.AccessToken)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookie.set(w, result.AccessToken)
	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Logout handles POST /api/logout. The cookie is cleared even for
// anonymous callers.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		handleError(h.log, w, r, err)
		return
	}

	h.cookie.clear(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toAuthResponse(result *auth.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		Token: result.AccessToken,
		User:  api.FromUser(result.User),
	}
}
