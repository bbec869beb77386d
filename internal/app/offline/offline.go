// Package offline implements the local-mode command line tool. Every command
// runs the same services as the HTTP API against the SQLite snapshot store,
// on behalf of the store's single owner.
package offline

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/local"
	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/service/entry"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"github.com/heartmarshall/scanplate-backend/internal/service/stats"
	"github.com/heartmarshall/scanplate-backend/internal/service/transfer"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// ErrUsage reports a malformed command line. The usage text has already
// been written when it is returned.
var ErrUsage = errors.New("usage error")

// Tool holds the services behind the offline commands.
type Tool struct {
	entries   *entry.Service
	stats     *stats.Service
	profiles  *profile.Service
	transfers *transfer.Service
	loc       *time.Location
	out       io.Writer
	log       *slog.Logger
}

// New wires the services over store. Output goes to out.
func New(store *local.Store, cfg *config.Config, out io.Writer, logger *slog.Logger) *Tool {
	loc := cfg.Stats.Location()
	entries := store.Entries()
	profiles := store.Profiles()

	return &Tool{
		entries:  entry.NewService(logger, entries, loc),
		stats:    stats.NewService(logger, entries, profiles, cfg.Stats),
		profiles: profile.NewService(logger, nil, profiles, cfg.Lookup.PhotoMonthlyQuota, loc),
		transfers: transfer.NewService(logger, entries, profiles, store, transfer.Options{
			Export:     cfg.Export,
			Stats:      cfg.Stats,
			PhotoQuota: cfg.Lookup.PhotoMonthlyQuota,
		}),
		loc: loc,
		out: out,
		log: logger.With("component", "offline"),
	}
}

type command struct {
	summary string
	run     func(t *Tool, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"add":         {"record an entry", (*Tool).add},
	"list":        {"list entries", (*Tool).list},
	"delete":      {"delete an entry by id", (*Tool).remove},
	"clear":       {"delete all entries, or one day with -date", (*Tool).clear},
	"day":         {"daily totals and goal progress", (*Tool).day},
	"week":        {"rolling window statistics", (*Tool).week},
	"month":       {"calendar month statistics", (*Tool).month},
	"methods":     {"entries per capture method", (*Tool).methods},
	"frequent":    {"most often logged foods", (*Tool).frequent},
	"goal":        {"show or set the daily calorie goal", (*Tool).goal},
	"export-csv":  {"write entries as CSV", (*Tool).exportCSV},
	"export-json": {"write a full JSON snapshot", (*Tool).exportJSON},
	"import-json": {"replace data from a JSON snapshot", (*Tool).importJSON},
	"report":      {"print the text report", (*Tool).report},
}

// Run dispatches args[0] to its command.
func (t *Tool) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		t.usage()
		return ErrUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(t.out, "unknown command %q\n\n", args[0])
		t.usage()
		return ErrUsage
	}

	ctx = ctxutil.WithOwnerID(ctx, local.OwnerID)
	return cmd.run(t, ctx, args[1:])
}

func (t *Tool) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(t.out, "usage: offline <command> [flags]")
	fmt.Fprintln(t.out)
	for _, name := range names {
		fmt.Fprintf(t.out, "  %-12s %s\n", name, commands[name].summary)
	}
}

// flags returns a flag set that reports errors to the tool output.
func (t *Tool) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(t.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}
