package supplier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
)

const backoffCap = 10 * time.Second

// Client is the low-level transport to the supplier API. It owns auth header
// construction, per-call timeouts, retry with exponential backoff for
// transient failures, rate-limit metadata extraction and error
// classification. It performs no interpretation of response content beyond
// checking that a success body is valid JSON.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	authorization  string
	defaultTimeout time.Duration
	maxAttempts    int
	retryBase      time.Duration
	logger         *slog.Logger
}

// NewClient fails when either credential is missing; this is a startup
// condition, not a per-call error.
func NewClient(cfg config.SupplierConfig, logger *slog.Logger) (*Client, error) {
	if cfg.KeyID == "" || cfg.APIKey == "" {
		return nil, errs.New("supplier credentials are not configured (key id and api key are both required)")
	}

	defaultTimeout := cfg.DefaultTimeout
	if defaultTimeout <= 0 {
		defaultTimeout = 60 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	retryBase := cfg.RetryBase
	if retryBase <= 0 {
		retryBase = 500 * time.Millisecond
	}

	return &Client{
		httpClient:     &http.Client{},
		baseURL:        cfg.BaseURL,
		authorization:  "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.KeyID+":"+cfg.APIKey)),
		defaultTimeout: defaultTimeout,
		maxAttempts:    maxAttempts,
		retryBase:      retryBase,
		logger:         logger,
	}, nil
}

// CallOptions override the configured defaults for a single call.
type CallOptions struct {
	Timeout  time.Duration
	Attempts int
}

// Call issues one logical request, retrying transient failures (HTTP 5xx,
// 429, timeouts, network errors) with exponential backoff. Other HTTP error
// statuses fail on the first attempt. The returned snapshot reflects the last
// response observed, success or failure.
func (c *Client) Call(ctx context.Context, method, path string, body any, opts *CallOptions) (json.RawMessage, RateLimitSnapshot, error) {
	timeout := c.defaultTimeout
	maxAttempts := c.maxAttempts
	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		if opts.Attempts > 0 {
			maxAttempts = opts.Attempts
		}
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, RateLimitSnapshot{}, errs.Wrap(err, "failed to encode supplier request body")
		}
	}

	var (
		lastErr  *Error
		snapshot RateLimitSnapshot
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, snap, callErr := c.attempt(ctx, method, path, payload, timeout)
		if snap != nil {
			snapshot = *snap
		}
		if callErr == nil {
			return raw, snapshot, nil
		}

		// Parent cancellation aborts immediately; only the per-attempt
		// deadline is retryable.
		if ctx.Err() != nil {
			return nil, snapshot, errs.Wrap(ctx.Err(), "supplier call cancelled")
		}

		lastErr = callErr
		if !callErr.Kind.Retryable() || attempt == maxAttempts {
			break
		}

		backoff := c.backoff(attempt)
		c.logger.Warn("supplier call failed, retrying",
			"path", path,
			"kind", string(callErr.Kind),
			"status", callErr.Status,
			"attempt", attempt,
			"backoff", backoff,
			"ratelimit_remaining", snapshot.Remaining,
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, snapshot, errs.Wrap(ctx.Err(), "supplier call cancelled during backoff")
		}
	}

	return nil, snapshot, lastErr
}

func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, timeout time.Duration) (json.RawMessage, *RateLimitSnapshot, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, newError(KindNetwork, 0, "", "failed to build supplier request", err)
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() == context.DeadlineExceeded {
			return nil, nil, newError(KindTimeout, 0, "", "supplier request timed out", err)
		}
		return nil, nil, newError(KindNetwork, 0, "", "network error calling supplier", err)
	}
	defer resp.Body.Close()

	snap := parseRateLimit(resp.Header)

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &snap, newError(KindNetwork, resp.StatusCode, "", "failed to read supplier response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := classifyStatus(resp.StatusCode)
		return nil, &snap, newError(kind, resp.StatusCode, string(text), "supplier responded with error", nil)
	}

	if len(text) == 0 || !json.Valid(text) {
		return nil, &snap, newError(KindInvalidResponse, resp.StatusCode, string(text), "supplier success response is not valid JSON", nil)
	}

	return json.RawMessage(text), &snap, nil
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindTransientServer
	default:
		return KindPermanentServer
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.retryBase << (attempt - 1)
	if d > backoffCap {
		d = backoffCap
	}
	return d
}

// parseRateLimit never fails; absent headers yield zeros.
func parseRateLimit(h http.Header) RateLimitSnapshot {
	limit := headerInt(h, "X-RateLimit-RequestsNumber")
	if limit == 0 {
		limit = headerInt(h, "X-RateLimit-Limit")
	}
	return RateLimitSnapshot{
		Limit:        limit,
		Remaining:    headerInt(h, "X-RateLimit-Remaining"),
		ResetSeconds: headerInt(h, "X-RateLimit-Reset"),
	}
}

func headerInt(h http.Header, key string) int {
	v := h.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
