// Command watch logs in to a running server, follows the realtime channel
// and prints the locally reconciled balance after every event.
//
// Usage:
//
//	watch --url=http://localhost:8080 --email=user@bank.com --password=user123
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
	"github.com/heartmarshall/boldbank-backend/pkg/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	email := flag.String("email", "user@bank.com", "login email")
	password := flag.String("password", "user123", "login password")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.New(*baseURL)
	if _, err := c.Login(ctx, *email, *password); err != nil {
		logger.Error("login", slog.String("error", err.Error()))
		os.Exit(1)
	}

	session := client.NewSession(c, logger)
	session.OnEvent = func(ev api.Event) {
		fmt.Printf("%-22s balance=%s transactions=%d\n", ev.Event, session.Balance().StringFixed(2), len(session.Transactions()))
	}

	err := session.Run(ctx)
	switch {
	case errors.Is(err, client.ErrForcedLogout):
		fmt.Printf("logged out by server: %s\n", session.LogoutReason())
	case err != nil:
		logger.Error("session", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
