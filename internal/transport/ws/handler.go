// Package ws serves the realtime channel over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/internal/realtime"
	"github.com/heartmarshall/boldbank-backend/internal/transport/middleware"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// verifyTimeout bounds the account lookup behind a register frame.
const verifyTimeout = 5 * time.Second

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Identity, bool)
}

// Handler upgrades GET /ws and keeps each connection registered in the
// connection registry for its lifetime.
type Handler struct {
	registry   *realtime.Registry
	verifier   tokenVerifier
	cfg        config.RealtimeConfig
	cookieName string
	upgrader   websocket.Upgrader
	log        *slog.Logger

	mu    sync.Mutex
	conns map[*Conn]struct{}
	wg    sync.WaitGroup
}

// NewHandler creates a realtime Handler. allowedOrigins is the comma
// separated CORS origin list; "*" accepts any origin.
func NewHandler(
	registry *realtime.Registry,
	verifier tokenVerifier,
	cfg config.RealtimeConfig,
	cookieName string,
	allowedOrigins string,
	logger *slog.Logger,
) *Handler {
	origins := middleware.ParseOrigins(allowedOrigins)
	return &Handler{
		registry:   registry,
		verifier:   verifier,
		cfg:        cfg,
		cookieName: cookieName,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins.Allows(origin)
			},
		},
		log:   logger.With("component", "realtime"),
		conns: make(map[*Conn]struct{}),
	}
}

// ServeHTTP handles GET /ws. The handshake identity comes from the bearer
// header, the session cookie or the token query parameter. A missing or
// invalid token still yields a connection that receives broadcasts only.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r, h.cookieName)
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.DebugContext(r.Context(), "upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newConn(ws, h.cfg.SendBuffer, h.log)
	h.track(c)
	h.registry.Add(c)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		c.writePump(h.cfg.WriteTimeout, h.cfg.PingPeriod)
	}()

	if identity, ok := h.verifier.VerifyToken(r.Context(), token); ok {
		h.bind(c, identity)
	} else if token != "" {
		h.reply(c, api.EventError, api.ErrorPayload{Message: "Invalid token"})
	}

	c.log.DebugContext(r.Context(), "connection opened")

	h.readPump(c)

	h.registry.Unbind(c)
	h.registry.Remove(c)
	h.untrack(c)
	c.Close()

	c.log.Debug("connection closed")
}

// Shutdown closes every open connection and waits for their writers to exit.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	for c := range h.conns {
		c.Close()
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handler) readPump(c *Conn) {
	c.ws.SetReadLimit(h.cfg.MaxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait)) //nolint:errcheck
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("read failed", slog.String("error", err.Error()))
			}
			return
		}

		var frame api.Event
		if err := json.Unmarshal(data, &frame); err != nil {
			h.reply(c, api.EventError, api.ErrorPayload{Message: "Malformed frame"})
			continue
		}

		h.handleFrame(c, frame)
	}
}

func (h *Handler) handleFrame(c *Conn, frame api.Event) {
	switch frame.Event {
	case api.EventRegister:
		var reg api.RegisterFrame
		if err := frame.Decode(&reg); err != nil {
			h.reply(c, api.EventError, api.ErrorPayload{Message: "Missing token"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		identity, ok := h.verifier.VerifyToken(ctx, reg.Token)
		cancel()
		if !ok {
			h.reply(c, api.EventError, api.ErrorPayload{Message: "Invalid token"})
			return
		}
		h.bind(c, identity)

	case api.EventUnregister:
		h.registry.Unbind(c)
		c.log.Debug("connection unregistered")

	default:
		h.reply(c, api.EventError, api.ErrorPayload{Message: "Unknown event " + frame.Event})
	}
}

func (h *Handler) bind(c *Conn, identity domain.Identity) {
	h.registry.Bind(identity, c)
	h.reply(c, api.EventRegistered, api.Registered{
		UserID: identity.ID.String(),
		Email:  identity.Email,
		Role:   identity.Role.String(),
	})
	c.log.Debug("connection registered", slog.String("user_id", identity.ID.String()))
}

func (h *Handler) reply(c *Conn, event string, payload any) {
	frame, err := api.EncodeEvent(event, payload)
	if err != nil {
		h.log.Error("encode reply", slog.String("error", err.Error()))
		return
	}
	if !c.Send(frame) {
		c.log.Warn("reply dropped", slog.String("event", event))
	}
}

func (h *Handler) track(c *Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Handler) untrack(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

var _ realtime.Handle = (*Conn)(nil)
