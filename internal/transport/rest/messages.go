package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	msgsvc "github.com/heartmarshall/boldbank-backend/internal/service/message"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

type messageService interface {
	Send(ctx context.Context, input msgsvc.SendInput) (*domain.Message, error)
	List(ctx context.Context, input msgsvc.ListInput) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Message, error)
}

// MessageHandler serves chat endpoints.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "messages")}
}

// Send handles POST /api/messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req api.SendMessageRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	m, err := h.svc.Send(r.Context(), msgsvc.SendInput{ToEmail: req.ToEmail, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.FromMessage(m))
}

// List handles GET /api/messages?user=<email>[&with=<email>].
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	msgs, err := h.svc.List(r.Context(), msgsvc.ListInput{User: q.Get("user"), With: q.Get("with")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromMessages(msgs))
}

// MarkRead handles PATCH /api/messages/{id}/read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromMessage(m))
}
