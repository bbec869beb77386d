// Command offline runs the nutrition tracker against a local SQLite file,
// without accounts or network access.
//
// Usage:
//
//	offline [-db path] <command> [flags]
//
// Run without a command to list the available commands. The database path
// defaults to LOCAL_STORE_PATH.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/local"
	"github.com/heartmarshall/scanplate-backend/internal/app"
	"github.com/heartmarshall/scanplate-backend/internal/app/offline"
	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

func main() {
	dbPath := flag.String("db", "", "SQLite file, overrides LOCAL_STORE_PATH")
	flag.Parse()

	err := run(*dbPath, flag.Args())
	switch {
	case err == nil:
	case errors.Is(err, offline.ErrUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "offline: %s\n", describe(err))
		os.Exit(1)
	}
}

func run(dbPath string, args []string) error {
	cfg, err := config.LoadLocal()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Local.Path = dbPath
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := local.Open(ctx, cfg.Local.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	return offline.New(store, cfg, os.Stdout, logger).Run(ctx, args)
}

// describe flattens validation errors into one line per field.
func describe(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msg := "invalid input"
	for field, problems := range ve.Fields() {
		for _, p := range problems {
			msg += fmt.Sprintf("\n  %s: %s", field, p)
		}
	}
	return msg
}
