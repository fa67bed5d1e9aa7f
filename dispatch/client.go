package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/disgo/config"
)

// maxRetryWait caps the linear backoff
const maxRetryWait = 30 * time.Second

// Client sends requests to the Disgo API. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	cfg       *config.Configuration
	baseURL   *url.URL
	http      *retryablehttp.Client
	userAgent string
	logger    zerolog.Logger
}

// Response is the buffered result of a successful call
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Empty is the response shape of calls that return no body
type Empty struct{}

type attemptsKey struct{}

// NewClient creates a new dispatch client
func NewClient(cfg *config.Configuration, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", config.ErrInvalidConfig)
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	o := clientOptions{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.Logger = leveledLogger{logger: logger}
	rc.RetryMax = cfg.Retries()
	rc.RetryWaitMin = cfg.RetryWait()
	rc.RetryWaitMax = maxRetryWait
	rc.CheckRetry = retryTransportErrors
	rc.Backoff = linearBackoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = countAttempt

	return &Client{
		cfg:       cfg,
		baseURL:   baseURL,
		http:      rc,
		userAgent: o.userAgent,
		logger:    logger,
	}, nil
}

// Configuration returns the client configuration
func (c *Client) Configuration() *config.Configuration {
	return c.cfg
}

// Do sends the request and returns the response when the status is 2xx.
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	if r == nil {
		return nil, &ValidationError{Field: "request", Reason: "request is required"}
	}

	u, err := r.URL(c.baseURL)
	if err != nil {
		return nil, err
	}

	var rawBody any
	if r.Body != nil {
		body, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &ValidationError{Field: "body", Reason: "cannot encode request body", Err: err}
		}
		rawBody = body
	}

	attempts := new(atomic.Int32)
	ctx = context.WithValue(ctx, attemptsKey{}, attempts)

	req, err := retryablehttp.NewRequestWithContext(ctx, r.Method, u.String(), rawBody)
	if err != nil {
		return nil, &ValidationError{Field: "method", Reason: "cannot build request", Err: err}
	}

	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if rawBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, values := range c.cfg.AuthHeaders() {
		req.Header[name] = values
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		netErr := &NetworkError{
			Method:   r.Method,
			URL:      u.String(),
			Attempts: int(attempts.Load()),
			Err:      err,
		}
		c.logger.Warn().
			Err(err).
			Str("method", r.Method).
			Str("url", u.String()).
			Int("attempts", netErr.Attempts).
			Msg("Disgo API request failed")
		return nil, netErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{
			Method:   r.Method,
			URL:      u.String(),
			Attempts: int(attempts.Load()),
			Err:      fmt.Errorf("failed to read response body: %w", err),
		}
	}

	c.logger.Debug().
		Str("method", r.Method).
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Int("attempts", int(attempts.Load())).
		Dur("duration", time.Since(start)).
		Msg("Disgo API request")

	if !IsSuccess(resp.StatusCode) {
		return nil, newAPIError(resp.StatusCode, resp.Status, body)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

// Decode unmarshals the body into v. A *Empty target accepts any body.
func (r *Response) Decode(v any) error {
	if _, ok := v.(*Empty); ok {
		return nil
	}
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return &ResponseParsingError{
			StatusCode: r.StatusCode,
			Err:        errors.New("empty response body"),
		}
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &ResponseParsingError{
			StatusCode: r.StatusCode,
			Body:       string(r.Body),
			Err:        err,
		}
	}
	return nil
}

// Execute sends the request and decodes a 2xx body into T. On failure the
// zero T is returned with one of the package error types.
func Execute[T any](ctx context.Context, c *Client, r *Request) (T, error) {
	var zero T

	resp, err := c.Do(ctx, r)
	if err != nil {
		return zero, err
	}

	var out T
	if err := resp.Decode(&out); err != nil {
		return zero, err
	}
	return out, nil
}

// retryTransportErrors retries only when no response arrived. Responses,
// whatever their status, are final.
func retryTransportErrors(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	return err != nil, nil
}

// linearBackoff waits min, 2*min, 3*min, ... capped at max.
func linearBackoff(min, max time.Duration, attemptNum int, _ *http.Response) time.Duration {
	wait := min * time.Duration(attemptNum+1)
	if wait > max {
		wait = max
	}
	return wait
}

func countAttempt(_ retryablehttp.Logger, req *http.Request, attemptNum int) {
	if n, ok := req.Context().Value(attemptsKey{}).(*atomic.Int32); ok {
		n.Store(int32(attemptNum + 1))
	}
}
