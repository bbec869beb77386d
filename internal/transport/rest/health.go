package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type dependency struct {
	name string
	// critical dependencies fail readiness; the others only degrade health.
	critical bool
	pinger   pinger
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	deps    []dependency
	version string
	now     func() time.Time
}

// NewHealthHandler checks the database and, when non-nil, the lookup cache.
func NewHealthHandler(db, cache pinger, version string) *HealthHandler {
	deps := []dependency{{name: "database", critical: true, pinger: db}}
	if cache != nil {
		deps = append(deps, dependency{name: "cache", pinger: cache})
	}
	return &HealthHandler{deps: deps, version: version, now: time.Now}
}

type checkResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

type healthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version,omitempty"`
	Components map[string]checkResult `json:"components,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: h.now().UTC()})
}

// Ready answers 503 while a critical dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context(), true)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResponse{Status: status, Timestamp: h.now().UTC()})
}

// Health reports every dependency with its latency. A non-critical outage
// yields "degraded" with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context(), false)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now().UTC(),
	})
}

// check pings the dependencies concurrently and folds their results into
// an overall status.
func (h *HealthHandler) check(ctx context.Context, criticalOnly bool) (string, map[string]checkResult) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]checkResult, len(h.deps))
		overall = "ok"
	)
	for _, d := range h.deps {
		if criticalOnly && !d.critical {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()

			started := h.now()
			err := d.pinger.Ping(ctx)
			res := checkResult{Status: "ok", LatencyMS: h.now().Sub(started).Milliseconds()}
			if err != nil {
				res = checkResult{Status: "down"}
			}

			mu.Lock()
			defer mu.Unlock()
			results[d.name] = res
			switch {
			case err == nil:
			case d.critical:
				overall = "down"
			case overall == "ok":
				overall = "degraded"
			}
		}()
	}
	wg.Wait()
	return overall, results
}
