package tmdb

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reelhubapp/reelhub-server/internal/ratelimit"
)

const (
	// Rate limit defaults: TMDB tolerates ~50 rps, we stay far below.
	defaultRPS   = 4.0
	defaultBurst = 8

	// HTTP client settings
	defaultTimeout = 5 * time.Second

	defaultBaseURL = "https://api.themoviedb.org/3"
)

// Rate limiter keys, one token bucket per endpoint family.
const (
	familyTrending = "trending"
	familyDiscover = "discover"
	familySearch   = "search"
	familyDetail   = "detail"
)

// Config configures a Client.
type Config struct {
	// APIKey authenticates every request via the api_key query parameter.
	APIKey string
	// BaseURL overrides the production API root. Used by tests.
	BaseURL string
	// RequestTimeout bounds each upstream call. Timeouts surface as
	// ErrUnavailable.
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Client is a rate-limited TMDB catalog client. It carries no retry logic
// and no cache: retries are the caller's choice and freshness is
// provider-owned.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// New creates a new TMDB client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: ratelimit.New(rps, burst),
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// doRequest executes a GET against the provider with rate limiting and
// authentication. Non-2xx responses become *StatusError; transport failures
// become ErrUnavailable.
func (c *Client) doRequest(ctx context.Context, family, path string, query url.Values) ([]byte, error) {
	// Wait for rate limit
	if err := c.limiter.Wait(ctx, family); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Set headers
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ReelHub/1.0")

	// Execute
	c.logger.Debug("tmdb request",
		"family", family,
		"path", path,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeout, DNS, refused connection. The provider never answered.
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Read body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	// Check status
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode, body),
		}
	}

	return body, nil
}

// statusMessage extracts the provider's status_message field when present,
// falling back to the HTTP status text.
func statusMessage(statusCode int, body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		return payload.StatusMessage
	}
	return http.StatusText(statusCode)
}
