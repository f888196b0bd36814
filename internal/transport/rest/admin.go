package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	usersvc "github.com/heartmarshall/boldbank-backend/internal/service/user"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

type adminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	Presence(ctx context.Context) (*usersvc.PresenceResult, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// Users returns every account.
// GET /api/admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, api.FromUser(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Presence returns the identities with open realtime connections.
// GET /api/admin/presence
func (h *AdminHandler) Presence(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Presence(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	online := make([]api.Presence, 0, len(p.Online))
	for _, o := range p.Online {
		online = append(online, api.Presence{UserID: o.UserID.String(), Email: o.Email, Connections: o.Connections})
	}
	writeJSON(w, http.StatusOK, api.PresenceResponse{Online: online, Anonymous: p.Anonymous(), Total: p.Total})
}

// SetRole changes a user's role.
// PATCH /api/admin/users/{id}/role
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req api.SetRoleRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	u, err := h.svc.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromUser(u))
}
