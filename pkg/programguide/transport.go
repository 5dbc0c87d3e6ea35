package programguide

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/listenupapp/programguide/internal/ratelimit"
)

// Getter performs a GET and returns the response body. Implementations
// must be safe for concurrent use if the client is shared.
type Getter interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// GetterFunc adapts a function to Getter.
type GetterFunc func(ctx context.Context, rawURL string) ([]byte, error)

// Get calls f.
func (f GetterFunc) Get(ctx context.Context, rawURL string) ([]byte, error) {
	return f(ctx, rawURL)
}

const (
	defaultRPS       = 1.0
	defaultBurst     = 3
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "programguide/1.0"

	maxBodyBytes = 16 << 20
)

// HTTPGetterOptions configures NewHTTPGetter.
type HTTPGetterOptions struct {
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Timeout    time.Duration
	// RequestsPerSecond is the per-host budget. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
	Logger            *slog.Logger
}

// DefaultHTTPGetterOptions returns one request per second per host with a
// burst of three and a 30 second timeout.
func DefaultHTTPGetterOptions() HTTPGetterOptions {
	return HTTPGetterOptions{
		Timeout:           defaultTimeout,
		RequestsPerSecond: defaultRPS,
		Burst:             defaultBurst,
		UserAgent:         defaultUserAgent,
	}
}

// HTTPGetter is the default Getter: a rate-limited net/http client.
type HTTPGetter struct {
	http      *http.Client
	limiter   *ratelimit.Limiter
	userAgent string
	logger    *slog.Logger
}

// NewHTTPGetter creates an HTTPGetter. Call Close when done.
func NewHTTPGetter(opts HTTPGetterOptions) *HTTPGetter {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	g := &HTTPGetter{
		http:      client,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
	if g.userAgent == "" {
		g.userAgent = defaultUserAgent
	}
	if g.logger == nil {
		g.logger = discardLogger()
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		g.limiter = ratelimit.New(opts.RequestsPerSecond, burst)
	}
	return g
}

// Close releases the limiter.
func (g *HTTPGetter) Close() {
	if g.limiter != nil {
		g.limiter.Stop()
	}
}

// Get fetches rawURL. Non-2xx responses return *StatusError.
func (g *HTTPGetter) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, u.Host); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	redacted := redactURL(u)

	resp, err := g.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactRawURL(urlErr.URL)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	g.logger.Debug("program guide response",
		"url", redacted,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        redacted,
			Body:       body,
		}
	}
	return body, nil
}
