package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/roach88/leetup/internal/catalog"
)

const defaultTimeout = 30 * time.Second

// Client fetches problem catalogs over HTTP.
//
// Each request carries a UUIDv7 correlation id in X-Request-ID and passes
// through a client-side rate limiter, so bursts of commands stay polite
// to the upstream API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	problems   string // full URL of the catalog endpoint
	cookie     string // session cookie, empty for anonymous access
}

// Options configures a Client.
type Options struct {
	// ProblemsURL is the full URL of the catalog endpoint.
	ProblemsURL string

	// SessionCookie is sent verbatim in the Cookie header when non-empty.
	// Anonymous fetches work; they just lack done/starred state.
	SessionCookie string

	// HTTPClient overrides the transport (for testing). Nil gets a
	// default client with a 30s timeout.
	HTTPClient *http.Client

	// RequestsPerSecond bounds the request rate. Zero or negative means
	// 2 req/s, which is plenty for a CLI.
	RequestsPerSecond float64
}

// New creates a Client for the given endpoint.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		problems:   opts.ProblemsURL,
		cookie:     opts.SessionCookie,
	}
}

// newRequestID returns a UUIDv7 correlation id for one request.
func newRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FetchProblems retrieves the full catalog and maps it to the engine's
// record shape. The upstream envelope carries user-level aggregates
// (solved counts, frequency buckets); those are dropped here, the engine
// depends only on per-problem fields.
//
// The returned slice preserves the upstream response order.
func (c *Client) FetchProblems(ctx context.Context) ([]catalog.Problem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.problems, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	requestID := newRequestID()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	slog.Debug("fetching catalog", "url", c.problems, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}

	var envelope listResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	problems := envelope.toProblems()
	slog.Debug("catalog fetched", "problems", len(problems), "request_id", requestID)

	return problems, nil
}
