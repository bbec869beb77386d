package rest

import (
	"net/http"

	"github.com/heartmarshall/scanplate-backend/internal/transport/middleware"
)

// Routes groups every handler mounted under /api.
type Routes struct {
	Auth    *AuthHandler
	Entries *EntryHandler
	Stats   *StatsHandler
	Profile *ProfileHandler
	Lookup  *LookupHandler
	Health  *HealthHandler
	Version VersionInfo
}

// Mount registers the routes on mux. authLimit wraps the unauthenticated
// auth endpoints and may be nil. Everything else except health and version
// requires an authenticated owner.
func (rt Routes) Mount(mux *http.ServeMux, authLimit middleware.Middleware) {
	if authLimit == nil {
		authLimit = func(h http.Handler) http.Handler { return h }
	}
	open := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authLimit(h))
	}
	private := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAuth(h))
	}

	open("POST /api/auth/register", rt.Auth.Register)
	open("POST /api/auth/login", rt.Auth.Login)
	open("POST /api/auth/refresh", rt.Auth.Refresh)
	private("POST /api/auth/logout", rt.Auth.Logout)
	private("GET /api/auth/me", rt.Auth.Me)

	private("GET /api/nutrition", rt.Entries.List)
	private("POST /api/nutrition", rt.Entries.Create)
	private("DELETE /api/nutrition", rt.Entries.Clear)
	private("GET /api/nutrition/{id}", rt.Entries.Get)
	private("PUT /api/nutrition/{id}", rt.Entries.Update)
	private("DELETE /api/nutrition/{id}", rt.Entries.Delete)

	private("GET /api/stats/daily", rt.Stats.Daily)
	private("GET /api/stats/weekly", rt.Stats.Weekly)
	private("GET /api/stats/monthly", rt.Stats.Monthly)
	private("GET /api/stats/meals", rt.Stats.Meals)
	private("GET /api/stats/methods", rt.Stats.Methods)
	private("GET /api/stats/streak", rt.Stats.Streak)
	private("GET /api/stats/frequent", rt.Stats.Frequent)
	private("GET /api/stats/macros", rt.Stats.Macros)
	private("GET /api/stats/preview", rt.Stats.Preview)

	private("GET /api/profile", rt.Profile.Get)
	private("PUT /api/profile", rt.Profile.Update)
	private("POST /api/profile/export", rt.Profile.ExportCSV)
	private("GET /api/profile/export.json", rt.Profile.ExportJSON)
	private("POST /api/profile/import", rt.Profile.Import)
	private("GET /api/profile/report", rt.Profile.Report)

	private("GET /api/lookup/barcode/{code}", rt.Lookup.Barcode)
	private("GET /api/lookup/foods", rt.Lookup.Foods)
	private("POST /api/lookup/photo", rt.Lookup.Photo)
	private("GET /api/lookup/photo/quota", rt.Lookup.Quota)

	mux.HandleFunc("GET /api/version", VersionHandler(rt.Version))
	mux.HandleFunc("GET /api/health", rt.Health.Health)
	mux.HandleFunc("GET /api/health/live", rt.Health.Live)
	mux.HandleFunc("GET /api/health/ready", rt.Health.Ready)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
}
