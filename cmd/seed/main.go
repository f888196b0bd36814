// Command seed creates bank accounts idempotently.
//
// Without flags it creates the configured demo pair (SEED_USER_EMAIL and
// SEED_ADMIN_EMAIL). With --email it creates one account, or, when the
// account exists, optionally resets its password and role.
//
// Usage:
//
//	seed
//	seed --email=ops@bank.com --password=secret123 --role=admin
//	seed --email=user@bank.com --password=newpass --reset-password
//
// Requires DATABASE_DSN and AUTH_JWT_SECRET to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/boldbank-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/boldbank-backend/internal/app"
	authpkg "github.com/heartmarshall/boldbank-backend/internal/auth"
	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
	authsvc "github.com/heartmarshall/boldbank-backend/internal/service/auth"
	"github.com/heartmarshall/boldbank-backend/migrations"
)

func main() {
	email := flag.String("email", "", "account email; empty seeds the default pair")
	password := flag.String("password", "", "account password")
	role := flag.String("role", "user", "account role: user or admin")
	resetPassword := flag.Bool("reset-password", false, "overwrite the password of an existing account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	users := userrepo.New(pool)
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	auth := authsvc.NewService(logger, users, jwtMgr, cfg.Auth, cfg.Bank)

	if *email == "" {
		seedCfg := cfg.Seed
		seedCfg.Enabled = true
		if err := app.SeedDefaults(ctx, seedCfg, auth, logger); err != nil {
			logger.Error("seed defaults", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Seeded %s and %s.\n", seedCfg.UserEmail, seedCfg.AdminEmail)
		return
	}

	wantRole := domain.UserRole(*role)
	if !wantRole.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q: must be user or admin\n", *role)
		os.Exit(2)
	}
	if *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed --email=user@example.com --password=secret [--role=admin] [--reset-password]")
		os.Exit(2)
	}

	u, created, err := auth.EnsureUser(ctx, *email, *password, wantRole)
	if err != nil {
		logger.Error("ensure user", slog.String("email", *email), slog.String("error", err.Error()))
		os.Exit(1)
	}
	if created {
		fmt.Printf("Created %s (%s).\n", u.Email, u.Role)
		return
	}

	if *resetPassword {
		if err := auth.SetPassword(ctx, u.Email, *password); err != nil {
			logger.Error("reset password", slog.String("email", u.Email), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Password of %s reset.\n", u.Email)
	}

	if u.Role != wantRole {
		if _, err := users.UpdateRole(ctx, u.ID, wantRole); err != nil {
			logger.Error("update role", slog.String("email", u.Email), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Role of %s changed from %s to %s.\n", u.Email, u.Role, wantRole)
		return
	}

	fmt.Printf("%s already exists (%s).\n", u.Email, u.Role)
}
