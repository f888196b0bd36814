// Package client is a Go SDK for the bank API and its realtime channel.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client talks to one server. It is safe for concurrent use; the bearer
// token is swapped atomically after login or an email change.
type Client struct {
	baseURL string
	http    *http.Client
	dialer  *websocket.Dialer

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken starts the client with an existing access token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the access token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login authenticates and keeps the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var out api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", api.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Register creates an account and keeps the returned token.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var out api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout ends the session and forgets the token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.SetToken("")
	return err
}

// Me returns the caller's profile.
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var out api.User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes profile fields. A reissued token replaces the
// current one.
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	var out api.ProfileResponse
	if err := c.do(ctx, http.MethodPatch, "/api/profile", req, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.SetToken(out.Token)
	}
	return &out, nil
}

// Balance returns the server-computed balance.
func (c *Client) Balance(ctx context.Context) (*api.Balance, error) {
	var out api.Balance
	if err := c.do(ctx, http.MethodGet, "/api/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTransaction submits a transfer. amount is the signed delta on the
// caller's balance.
func (c *Client) CreateTransaction(ctx context.Context, amount decimal.Decimal, description string) (*api.Transaction, error) {
	var out api.Transaction
	req := api.CreateTransactionRequest{Amount: amount, Description: description}
	if err := c.do(ctx, http.MethodPost, "/api/transactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions returns the caller's transactions (all, for admins).
func (c *Client) ListTransactions(ctx context.Context) ([]api.Transaction, error) {
	var out []api.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve completes a pending transaction (admin only).
func (c *Client) Approve(ctx context.Context, id string) (*api.Transaction, error) {
	var out api.Transaction
	if err := c.do(ctx, http.MethodPatch, "/api/transactions/"+url.PathEscape(id)+"/approve", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Decline rejects a pending transaction (admin only).
func (c *Client) Decline(ctx context.Context, id string, forceSessionEnd bool) (*api.Transaction, error) {
	var out api.Transaction
	req := api.DeclineRequest{ForceSessionEnd: forceSessionEnd}
	if err := c.do(ctx, http.MethodPatch, "/api/transactions/"+url.PathEscape(id)+"/decline", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage sends a chat message.
func (c *Client) SendMessage(ctx context.Context, toEmail, content string) (*api.Message, error) {
	var out api.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", api.SendMessageRequest{ToEmail: toEmail, Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns the conversation between user and with.
func (c *Client) ListMessages(ctx context.Context, user, with string) ([]api.Message, error) {
	q := url.Values{"user": {user}}
	if with != "" {
		q.Set("with", with)
	}
	var out []api.Message
	if err := c.do(ctx, http.MethodGet, "/api/messages?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var e api.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			apiErr.Message = e.Error
			apiErr.Fields = e.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
