// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens [-timeout 30s]
//
// Reads the same configuration as the server; only the database section
// is required.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/postgres"
	profilerepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/profile"
	tokenrepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/scanplate-backend/internal/app"
	"github.com/heartmarshall/scanplate-backend/internal/auth"
	"github.com/heartmarshall/scanplate-backend/internal/config"
	authsvc "github.com/heartmarshall/scanplate-backend/internal/service/auth"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	if err := run(*timeout); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup-tokens: %v\n", err)
		os.Exit(1)
	}
}

func run(timeout time.Duration) error {
	cfg, err := config.LoadLocal()
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("DATABASE_DSN is required")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := authsvc.NewService(logger,
		userrepo.New(pool),
		profilerepo.New(pool),
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)
	n, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		return err
	}

	logger.Info("cleanup finished", slog.Int("deleted", n))
	return nil
}
