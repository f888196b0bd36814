// Command ledger is a maintenance tool for the transaction ledger.
//
// Usage:
//
//	ledger count        print the number of stored transactions
//	ledger clear --yes  delete every transaction
//	ledger duplicates   list emails shared by more than one account
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
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
	ledgerrepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/ledger"
	userrepo "github.com/heartmarshall/boldbank-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/boldbank-backend/internal/app"
	"github.com/heartmarshall/boldbank-backend/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ledger count | clear --yes | duplicates")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm destructive operations")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	ledger := ledgerrepo.New(pool)

	switch cmd {
	case "count":
		n, err := ledger.Count(ctx)
		if err != nil {
			logger.Error("count transactions", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(n)

	case "clear":
		if !*yes {
			fmt.Fprintln(os.Stderr, "refusing to delete every transaction without --yes")
			os.Exit(2)
		}
		deleted, err := ledger.DeleteAll(ctx)
		if err != nil {
			logger.Error("clear transactions", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("transactions cleared", slog.Int64("deleted", deleted))

	case "duplicates":
		dups, err := userrepo.New(pool).DuplicateEmails(ctx)
		if err != nil {
			logger.Error("find duplicate emails", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(dups) == 0 {
			fmt.Println("No duplicate emails.")
			return
		}
		for _, e := range dups {
			fmt.Println(e)
		}

	default:
		usage()
	}
}
