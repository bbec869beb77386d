package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter keeps one token bucket per client IP and limit. Buckets idle
// longer than the sweep interval are forgotten.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	now     func() time.Time
	idle    time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

type bucketKey struct {
	ip        string
	perMinute int
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter starts a limiter whose sweeper runs every sweepEvery.
// Stop must be called on shutdown.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := newRateLimiter(time.Now, sweepEvery)
	go rl.sweepLoop(sweepEvery)
	return rl
}

func newRateLimiter(now func() time.Time, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     now,
		idle:    max(idle, 10*time.Minute),
		done:    make(chan struct{}),
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// Limit allows perMinute requests per client IP, with bursts up to the same
// amount. Rejected requests get 429 and a Retry-After in whole seconds.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(bucketKey{ip: clientIP(r), perMinute: perMinute})
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token, or reports how long until one is available.
func (rl *RateLimiter) take(key bucketKey) (time.Duration, bool) {
	capacity := float64(key.perMinute)
	perSecond := capacity / 60
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, seen: now}
		rl.buckets[key] = b
	}
	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.seen).Seconds()*perSecond)
	b.seen = now

	if b.tokens < 1 {
		if perSecond <= 0 {
			return time.Minute, false
		}
		return time.Duration((1 - b.tokens) / perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.idle)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, b := range rl.buckets {
		if b.seen.Before(cutoff) {
			delete(rl.buckets, k)
		}
	}
}

// clientIP strips the port so reconnects from one host share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
