// Package apiclient wraps the scheduling API endpoints consumed by the gateway.
//
// Each call issues exactly one request: no retries, no backoff, no client-side
// timeout. Cancellation is left to the caller's context.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/payd/web/internal/api/metrics"
	"github.com/payd/web/internal/pkg/session"
)

// Client issues requests against the API rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends a single request. body is JSON-encoded when non-nil, in which case
// the JSON content type is set. Session cookies attached to ctx are forwarded.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", endpoint, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range session.Cookies(ctx) {
		req.AddCookie(ck)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("upstream request failed")
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	c.log.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("upstream request")

	return resp, nil
}

// Ping checks that the API answers on /ping.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "ping", http.MethodGet, "/ping", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping returned %s", resp.Status)
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusText returns the reason phrase the API sent, falling back to the
// standard text for the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); phrase != "" {
		return phrase
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return code
}
