package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/prilive-com/notigo/tg"
)

const (
	maxResponseSize   = 10 << 20 // 10MB
	methodSendMessage = "sendMessage"
)

// CircuitBreakerSettings configures the circuit breaker behavior.
type CircuitBreakerSettings struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	// If 0, internal counts never reset in closed state.
	Interval time.Duration

	// Timeout is the duration of the open state before transitioning to half-open.
	Timeout time.Duration

	// ReadyToTrip determines if breaker should trip based on failure counts.
	// If nil, uses default (50% failure rate after 3 requests).
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultCircuitBreakerSettings returns production-ready defaults.
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.5
		},
	}
}

// Client performs sendMessage exchanges against the Telegram Bot API.
// One Deliver call is one HTTP exchange; the token travels with each
// delivery, so a single client can serve reconfigured notifiers.
type Client struct {
	config          Config
	httpClient      *http.Client
	logger          *slog.Logger
	limiter         *rate.Limiter
	breaker         *gobreaker.CircuitBreaker[*apiResponse]
	breakerSettings CircuitBreakerSettings
}

type apiResponse struct {
	OK          bool                   `json:"ok"`
	Result      json.RawMessage        `json:"result,omitempty"`
	ErrorCode   int                    `json:"error_code,omitempty"`
	Description string                 `json:"description,omitempty"`
	Parameters  *tg.ResponseParameters `json:"parameters,omitempty"`
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL sets the API base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.config.BaseURL = url
	}
}

// WithRateLimit sets rate limiting parameters.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.config.GlobalRPS = rps
		c.config.GlobalBurst = burst
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithCircuitBreakerSettings configures the circuit breaker.
func WithCircuitBreakerSettings(settings CircuitBreakerSettings) Option {
	return func(c *Client) {
		c.breakerSettings = settings
	}
}

// The HTTP client has no overall timeout; the per-attempt deadline comes
// from the caller's context. Dial, TLS, and header timeouts still bound
// a hung connection.
func createHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: cfg.KeepAlive,
			}).DialContext,
			MaxIdleConns:          cfg.MaxIdleConns,
			IdleConnTimeout:       cfg.IdleTimeout,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ForceAttemptHTTP2:     true,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// New creates a new Client with default configuration.
func New(opts ...Option) (*Client, error) {
	return NewFromConfig(DefaultConfig(), opts...)
}

// NewFromConfig creates a Client from a Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, tg.NewConfigError("base_url", "API base URL is required")
	}

	c := &Client{config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		c.httpClient = createHTTPClient(c.config)
	}

	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Limit(c.config.GlobalRPS), c.config.GlobalBurst)
	}

	if c.breakerSettings.ReadyToTrip == nil {
		c.breakerSettings = DefaultCircuitBreakerSettings()
		if cfg.BreakerMaxRequests > 0 {
			c.breakerSettings.MaxRequests = cfg.BreakerMaxRequests
		}
		if cfg.BreakerInterval > 0 {
			c.breakerSettings.Interval = cfg.BreakerInterval
		}
		if cfg.BreakerTimeout > 0 {
			c.breakerSettings.Timeout = cfg.BreakerTimeout
		}
	}

	c.breaker = gobreaker.NewCircuitBreaker[*apiResponse](gobreaker.Settings{
		Name:         "notigo-transport",
		MaxRequests:  c.breakerSettings.MaxRequests,
		Interval:     c.breakerSettings.Interval,
		Timeout:      c.breakerSettings.Timeout,
		ReadyToTrip:  c.breakerSettings.ReadyToTrip,
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return c, nil
}

// Close releases resources used by the client.
// In-flight requests complete normally or with context errors.
func (c *Client) Close() error {
	if t, ok := c.httpClient.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// Deliver performs one sendMessage exchange. The text must already be
// rendered; no formatting happens here. Faults come back classifiable
// through tg.IsMarkupRejection and tg.IsTransient.
func (c *Client) Deliver(ctx context.Context, d tg.Delivery) (*tg.Message, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.breaker.Execute(func() (*apiResponse, error) {
		return c.doRequest(ctx, d)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", tg.ErrCircuitOpen, err)
		}
		return nil, err
	}

	return parseMessage(resp)
}

func (c *Client) doRequest(ctx context.Context, d tg.Delivery) (*apiResponse, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.config.BaseURL, d.Token.Value(), methodSendMessage)

	jsonData, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", scrubToken(err, d.Token))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", scrubToken(err, d.Token))
	}
	defer resp.Body.Close()

	// Read maxResponseSize+1 to detect overflow without a false positive
	// on an exactly-full response.
	limitedReader := io.LimitReader(resp.Body, maxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if int64(len(body)) > maxResponseSize {
		return nil, tg.ErrResponseTooLarge
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if !apiResp.OK {
		// Parse retry_after: JSON body (primary) + HTTP header (fallback)
		retryAfter := parseRetryAfter(&apiResp, resp)
		if retryAfter > 0 {
			return nil, tg.NewAPIErrorWithRetry(methodSendMessage, apiResp.ErrorCode, apiResp.Description, retryAfter)
		}
		return nil, tg.NewAPIError(methodSendMessage, apiResp.ErrorCode, apiResp.Description)
	}

	return &apiResp, nil
}

func parseMessage(resp *apiResponse) (*tg.Message, error) {
	var msg tg.Message
	if err := json.Unmarshal(resp.Result, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// isBreakerSuccess determines if an error should count as a circuit breaker failure.
// Only server errors (5xx) and network errors trip the breaker.
// Client errors (4xx) including 429 are NOT breaker failures:
// 429 is rate pressure, not service degradation, and is handled via retry_after.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *tg.APIError
	if errors.As(err, &apiErr) {
		// All 4xx = client-side issues, don't trip breaker.
		// 5xx = server failure → trip breaker.
		return apiErr.Code >= 400 && apiErr.Code < 500
	}
	// Context cancellation is not a service failure
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// Network errors, timeouts → breaker failure
	return false
}

// parseRetryAfter extracts retry_after from JSON body (primary) or HTTP header (fallback).
func parseRetryAfter(apiResp *apiResponse, httpResp *http.Response) time.Duration {
	// Primary source: JSON response body
	if apiResp.Parameters != nil && apiResp.Parameters.RetryAfter > 0 {
		return time.Duration(apiResp.Parameters.RetryAfter) * time.Second
	}

	// Fallback: HTTP Retry-After header
	if httpResp != nil {
		if retryHeader := httpResp.Header.Get("Retry-After"); retryHeader != "" {
			if seconds, err := strconv.Atoi(retryHeader); err == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}

	return 0
}
