//go:build e2e

package e2e_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/boldbank-backend/internal/app"
	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
	"github.com/heartmarshall/boldbank-backend/pkg/client"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
	srv  *app.Server
	log  *slog.Logger
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
			CookieName:       "token",
		},
		Bank: config.BankConfig{
			OpeningBalanceRaw: "1000.00",
			MaxAmountRaw:      "1000000.00",
		},
		Realtime: config.RealtimeConfig{
			WriteTimeout:   5 * time.Second,
			PongWait:       30 * time.Second,
			PingPeriod:     20 * time.Second,
			SendBuffer:     32,
			MaxMessageSize: 4096,
		},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 1000, CleanupInterval: time.Minute},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Log: config.LogConfig{Level: "debug", Format: "text"},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	srv := app.NewServer(testConfig(t), pool, logger)
	httpSrv := httptest.NewServer(srv.Handler)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		httpSrv.Close()
	})

	return &testServer{URL: httpSrv.URL, Pool: pool, srv: srv, log: logger}
}

// newUser creates an account with a unique email and returns a logged-in client.
func (ts *testServer) newUser(t *testing.T, role domain.UserRole) (*client.Client, string) {
	t.Helper()
	ctx := context.Background()

	email := fmt.Sprintf("%s-%s@bank.test", role, uuid.New().String()[:8])
	_, _, err := ts.srv.Auth.EnsureUser(ctx, email, "password123", role)
	require.NoError(t, err)

	c := client.New(ts.URL)
	_, err = c.Login(ctx, email, "password123")
	require.NoError(t, err)

	return c, email
}

// liveSession runs a client session in the background and returns a channel
// of the event names it processes. The session is stopped on cleanup.
func (ts *testServer) liveSession(t *testing.T, c *client.Client) (*client.Session, <-chan string, <-chan error) {
	t.Helper()

	events := make(chan string, 64)
	done := make(chan error, 1)

	s := client.NewSession(c, ts.log)
	s.OnEvent = func(ev api.Event) { events <- ev.Event }

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { done <- s.Run(ctx) }()

	waitEvent(t, events, api.EventRegistered)
	return s, events, done
}

// waitEvent blocks until the named event arrives, skipping others.
func waitEvent(t *testing.T, events <-chan string, name string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-events:
			if got == name {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", name)
		}
	}
}
