package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	txsvc "github.com/heartmarshall/boldbank-backend/internal/service/transaction"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

type transactionService interface {
	Create(ctx context.Context, input txsvc.CreateInput) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Decline(ctx context.Context, id uuid.UUID, input txsvc.DeclineInput) (*domain.Transaction, error)
}

// TransactionHandler serves the transaction workflow.
type TransactionHandler struct {
	svc transactionService
	log *slog.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc transactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: logger.With("handler", "transactions")}
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTransactions(txs))
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTransactionRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	tx, err := h.svc.Create(r.Context(), txsvc.CreateInput{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.FromTransaction(tx))
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTransaction(tx))
}

// Approve handles PATCH /api/transactions/{id}/approve.
func (h *TransactionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tx, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTransaction(tx))
}

// Decline handles PATCH /api/transactions/{id}/decline. The body is optional.
func (h *TransactionHandler) Decline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req api.DeclineRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	tx, err := h.svc.Decline(r.Context(), id, txsvc.DeclineInput{ForceSessionEnd: req.ForceSessionEnd})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.FromTransaction(tx))
}
