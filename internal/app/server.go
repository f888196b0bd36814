package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/boldbank-backend/internal/adapter/postgres"
	ledgerrepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/ledger"
	messagerepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/message"
	userrepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/boldbank-backend/internal/auth"
	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/realtime"
	authsvc "github.com/heartmarshall/boldbank-backend/internal/service/auth"
	messagesvc "github.com/heartmarshall/boldbank-backend/internal/service/message"
	txsvc "github.com/heartmarshall/boldbank-backend/internal/service/transaction"
	usersvc "github.com/heartmarshall/boldbank-backend/internal/service/user"
	"github.com/heartmarshall/boldbank-backend/internal/transport/middleware"
	"github.com/heartmarshall/boldbank-backend/internal/transport/rest"
	"github.com/heartmarshall/boldbank-backend/internal/transport/ws"
)

// Server is the fully wired HTTP surface: REST API, realtime channel and
// health endpoints, plus the resources that must be released on shutdown.
type Server struct {
	Handler http.Handler
	Auth    *authsvc.Service

	registry *realtime.Registry
	realtime *ws.Handler
	limiter  *middleware.RateLimiter
}

// NewServer builds repositories, services and transport on top of pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Server {
	// Infrastructure.
	txm := postgres.NewTxManager(pool)
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Repositories.
	users := userrepo.New(pool)
	ledger := ledgerrepo.New(pool)
	messages := messagerepo.New(pool)

	// Realtime.
	registry := realtime.NewRegistry()
	dispatcher := realtime.NewDispatcher(registry, logger)
	publisher := realtime.NewPublisher(dispatcher)

	// Services.
	authService := authsvc.NewService(logger, users, jwtMgr, cfg.Auth, cfg.Bank)
	userService := usersvc.NewService(logger, users, ledger, txm, authService, publisher)
	txService := txsvc.NewService(logger, ledger, txm, publisher, cfg.Bank)
	messageService := messagesvc.NewService(logger, users, messages, publisher)

	s := &Server{
		Auth:     authService,
		registry: registry,
		realtime: ws.NewHandler(registry, authService, cfg.Realtime, cfg.Auth.CookieName, cfg.CORS.AllowedOrigins, logger),
		limiter:  middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval),
	}

	s.Handler = s.routes(cfg, logger, pool,
		rest.NewAuthHandler(authService, cfg.Auth, logger),
		rest.NewProfileHandler(userService, cfg.Auth, logger),
		rest.NewTransactionHandler(txService, logger),
		rest.NewMessageHandler(messageService, logger),
		rest.NewAdminHandler(userService, logger),
	)

	return s
}

func (s *Server) routes(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	authH *rest.AuthHandler,
	profileH *rest.ProfileHandler,
	txH *rest.TransactionHandler,
	msgH *rest.MessageHandler,
	adminH *rest.AdminHandler,
) http.Handler {
	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(s.Auth, cfg.Auth.CookieName),
		middleware.Logger(logger),
	)
	// Session endpoints tolerate a stale cookie.
	session := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.OptionalAuth(s.Auth, cfg.Auth.CookieName),
		middleware.Logger(logger),
	)
	limited := session.With(s.limiter.Limit(cfg.RateLimit.LoginPerMinute))
	user := api.With(middleware.RequireAuth)
	admin := api.With(middleware.RequireAdmin(s.Auth))

	mux := http.NewServeMux()

	// Identity.
	mux.Handle("POST /api/login", limited.Then(authH.Login))
	mux.Handle("POST /api/register", limited.Then(authH.Register))
	mux.Handle("POST /api/logout", session.Then(authH.Logout))

	// Profile.
	mux.Handle("GET /api/me", user.Then(profileH.Me))
	mux.Handle("PATCH /api/profile", user.Then(profileH.Update))
	mux.Handle("GET /api/balance", user.Then(profileH.Balance))

	// Transactions.
	mux.Handle("GET /api/transactions", user.Then(txH.List))
	mux.Handle("POST /api/transactions", user.Then(txH.Create))
	mux.Handle("GET /api/transactions/{id}", user.Then(txH.Get))
	mux.Handle("PATCH /api/transactions/{id}/approve", admin.Then(txH.Approve))
	mux.Handle("PATCH /api/transactions/{id}/decline", admin.Then(txH.Decline))

	// Messages.
	mux.Handle("POST /api/messages", user.Then(msgH.Send))
	mux.Handle("GET /api/messages", user.Then(msgH.List))
	mux.Handle("PATCH /api/messages/{id}/read", user.Then(msgH.MarkRead))

	// Admin.
	mux.Handle("GET /api/admin/users", admin.Then(adminH.Users))
	mux.Handle("GET /api/admin/presence", admin.Then(adminH.Presence))
	mux.Handle("PATCH /api/admin/users/{id}/role", admin.Then(adminH.SetRole))

	// CORS preflight for every API path.
	mux.Handle("OPTIONS /api/", api(http.NotFoundHandler()))

	// Realtime. Tokens are resolved by the channel itself so that an
	// invalid token degrades to an anonymous connection instead of a 401.
	mux.Handle("GET /ws", middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(s.realtime))

	// Health.
	health := rest.NewHealthHandler(pool, s.registry, BuildVersion())
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /healthz", health.Healthz)

	return mux
}

// Shutdown closes realtime connections and stops background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.realtime.Shutdown(ctx)
}
