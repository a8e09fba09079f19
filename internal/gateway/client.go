package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance-tracker/internal/config"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/logging"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	HeaderRequestID = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// AuthTransport attaches the session token to every outgoing request. An
// expired or missing token fails the request before it reaches the network.
type AuthTransport struct {
	tokens TokenSource
	now    func() time.Time
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, err
	}
	if err := CheckToken(token, t.now()); err != nil {
		return nil, err
	}

	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+token)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

// Client is the REST gateway to the finance backend.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	breaker *backendBreaker
	logger  *slog.Logger
	now     func() time.Time
}

type ClientOption func(*Client)

// WithTransport replaces the underlying round tripper; the auth layer stays on top.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		if auth, ok := c.client.Transport.(*AuthTransport); ok {
			auth.base = rt
		}
	}
}

// WithClock overrides the time source used for token expiry and the breaker.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
		c.breaker.now = now
		if auth, ok := c.client.Transport.(*AuthTransport); ok {
			auth.now = now
		}
	}
}

// NewClient creates a backend client from the API configuration
func NewClient(cfg *config.APIConfig, tokens TokenSource, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	transport := &AuthTransport{
		tokens: tokens,
		now:    time.Now,
		base:   http.DefaultTransport,
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		breaker: newBackendBreaker(cfg),
		logger:  logger.With(logging.FieldComponent, logging.ComponentGateway),
		now:     time.Now,
	}
	c.breaker.onChange = func(from, to BreakerState) {
		c.logger.Warn("backend circuit breaker changed state", "from", from.String(), "to", to.String())
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BreakerState exposes the circuit breaker position.
func (c *Client) BreakerState() BreakerState {
	return c.breaker.current()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := logging.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(HeaderRequestID, requestID)

	return req, nil
}

// send executes req and returns the open response for any 2xx status. Other
// statuses are decoded into *apperrors.APIError.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if err := c.breaker.allow(); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestID := req.Header.Get(HeaderRequestID)
	start := c.now()

	resp, err := c.client.Do(req)
	if err != nil {
		if c.record(req, 0, err) == outcomeAbandoned {
			if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrMissingToken) {
				return nil, err
			}
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		c.logger.Error(
			"backend request failed",
			"method", req.Method,
			"path", req.URL.Path,
			logging.FieldRequestID, requestID,
			logging.FieldError, err,
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	c.logger.Debug(
		"backend request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		logging.FieldRequestID, requestID,
		logging.FieldDuration, c.now().Sub(start).Milliseconds(),
	)

	c.record(req, resp.StatusCode, nil)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()

	if echoed := resp.Header.Get(HeaderRequestID); echoed != "" {
		requestID = echoed
	}
	apiErr := apperrors.DecodeAPIError(resp.StatusCode, body, requestID)

	c.logger.Warn(
		"backend returned error",
		"method", req.Method,
		"path", req.URL.Path,
		"status", apiErr.Status,
		"code", apiErr.Code,
		"message", apiErr.Message,
		logging.FieldRequestID, apiErr.RequestID,
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, apiErr)
	}
	return nil, apiErr
}

func (c *Client) record(req *http.Request, status int, err error) callOutcome {
	outcome := outcomeOf(req.Context(), status, err)
	c.breaker.record(outcome)
	return outcome
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// call sends a JSON request and decodes a JSON response into out when out is non-nil
func (c *Client) call(ctx context.Context, method, path string, query url.Values, in, out any) error {
	req, err := c.buildRequest(ctx, method, path, query, in)
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func resourcePath(collection, id string, suffix ...string) string {
	parts := append([]string{collection, url.PathEscape(id)}, suffix...)
	return strings.Join(parts, "/")
}
