package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/cache"
	"github.com/heartmarshall/scanplate-backend/internal/adapter/postgres"
	entryrepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/entry"
	profilerepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/profile"
	tokenrepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider/clarifai"
	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider/openfoodfacts"
	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider/usda"
	"github.com/heartmarshall/scanplate-backend/internal/auth"
	"github.com/heartmarshall/scanplate-backend/internal/config"
	authsvc "github.com/heartmarshall/scanplate-backend/internal/service/auth"
	"github.com/heartmarshall/scanplate-backend/internal/service/entry"
	"github.com/heartmarshall/scanplate-backend/internal/service/lookup"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"github.com/heartmarshall/scanplate-backend/internal/service/stats"
	"github.com/heartmarshall/scanplate-backend/internal/service/transfer"
	"github.com/heartmarshall/scanplate-backend/internal/transport/middleware"
	"github.com/heartmarshall/scanplate-backend/internal/transport/rest"
)

// server is the wired HTTP API together with the resources it owns.
type server struct {
	handler http.Handler
	closers []func()
}

func (s *server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*server, error) {
	srv := &server{}
	loc := cfg.Stats.Location()

	// Stores.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	entries := entryrepo.New(pool)

	// Optional lookup cache.
	var lookupCache *cache.Cache
	if cfg.Cache.RedisAddr != "" {
		c, err := cache.New(ctx, cfg.Cache, logger)
		if err != nil {
			logger.Warn("lookup cache disabled", slog.String("error", err.Error()))
		} else {
			lookupCache = c
			srv.closers = append(srv.closers, func() { c.Close() })
		}
	}

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, profiles, tokens, txm, jwtMgr, cfg.Auth)
	entryService := entry.NewService(logger, entries, loc)
	statsService := stats.NewService(logger, entries, profiles, cfg.Stats)
	profileService := profile.NewService(logger, users, profiles, cfg.Lookup.PhotoMonthlyQuota, loc)
	lookupService := lookup.NewService(logger, lookupDeps(cfg.Lookup, logger, profiles, lookupCache), cfg.Lookup, loc)
	transferService := transfer.NewService(logger, entries, profiles, txm, transfer.Options{
		Export:     cfg.Export,
		Stats:      cfg.Stats,
		PhotoQuota: cfg.Lookup.PhotoMonthlyQuota,
	})

	// Routes.
	var cachePinger interface {
		Ping(ctx context.Context) error
	}
	if lookupCache != nil {
		cachePinger = lookupCache
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	srv.closers = append(srv.closers, limiter.Stop)

	mux := http.NewServeMux()
	rest.Routes{
		Auth:    rest.NewAuthHandler(authService, logger),
		Entries: rest.NewEntryHandler(entryService, loc, logger),
		Stats:   rest.NewStatsHandler(statsService, loc, logger),
		Profile: rest.NewProfileHandler(profileService, transferService, loc, logger),
		Lookup:  rest.NewLookupHandler(lookupService, logger),
		Health:  rest.NewHealthHandler(pool, cachePinger, Version),
		Version: buildInfo(),
	}.Mount(mux, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	srv.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)(mux)

	return srv, nil
}

// lookupDeps builds the provider set. Providers without an API key and a
// disabled cache are left as nil interfaces so the service can tell.
func lookupDeps(cfg config.LookupConfig, logger *slog.Logger, profiles *profilerepo.Repo, c *cache.Cache) lookup.Deps {
	deps := lookup.Deps{
		Barcodes: openfoodfacts.NewProvider(cfg.OpenFoodFactsURL, cfg.Timeout, logger),
		Profiles: profiles,
	}
	if cfg.USDAConfigured() {
		deps.Foods = usda.NewProvider(cfg.USDAURL, cfg.USDAAPIKey, cfg.USDAPageSize, cfg.Timeout, logger)
	} else {
		logger.Warn("USDA API key not set; food search disabled")
	}
	if cfg.ClarifaiConfigured() {
		deps.Photos = clarifai.NewProvider(cfg.ClarifaiURL, cfg.ClarifaiAPIKey, cfg.ClarifaiModel, cfg.Timeout, logger)
	} else {
		logger.Warn("Clarifai API key not set; photo recognition disabled")
	}
	if c != nil {
		deps.Cache = c
	}
	return deps
}
