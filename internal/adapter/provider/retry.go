// Package provider holds what the food-data adapters share.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RetryDelay is the pause before the single retry.
const RetryDelay = 500 * time.Millisecond

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoWithRetry sends req and, after delay, sends it once more when the first
// attempt fails with a network error or a 5xx status. The body is rewound
// through req.GetBody; a body that cannot be rewound is not resent.
//
// attrs are added to the retry log line. The error is never logged, since
// url.Error carries the request URL and some providers put keys in it.
func DoWithRetry(ctx context.Context, client Doer, req *http.Request, delay time.Duration, log *slog.Logger, attrs ...any) (*http.Response, error) {
	resp, err := client.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	log.WarnContext(ctx, "retrying request", append(attrs, slog.String("reason", reason))...)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.GetBody != nil {
		body, gerr := req.GetBody()
		if gerr != nil {
			return nil, fmt.Errorf("rewind body: %w", gerr)
		}
		req.Body = body
	}
	return client.Do(req)
}
