package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
	usersvc "github.com/heartmarshall/boldbank-backend/internal/service/user"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input usersvc.UpdateProfileInput) (*usersvc.ProfileResult, error)
	Balance(ctx context.Context) (*usersvc.BalanceResult, error)
}

// ProfileHandler serves the caller's own account endpoints.
type ProfileHandler struct {
	svc    profileService
	cookie sessionCookie
	log    *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, cfg config.AuthConfig, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, cookie: newSessionCookie(cfg), log: logger.With("handler", "profile")}
}

// Me handles GET /api/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromUser(u))
}

// Update handles PATCH /api/profile. An email change reissues the token,
// which is returned and replaces the session cookie.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateProfileRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.svc.UpdateProfile(r.Context(), usersvc.UpdateProfileInput{
		Email:         req.Email,
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Phone:         req.Phone,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if result.Token != "" {
		h.cookie.set(w, result.Token)
	}
	writeJSON(w, http.StatusOK, api.ProfileResponse{User: api.FromUser(result.User), Token: result.Token})
}

// Balance handles GET /api/balance.
func (h *ProfileHandler) Balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Balance(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.Balance{Opening: b.Opening, Balance: b.Balance})
}
