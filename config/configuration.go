// Package config holds the client Configuration used by every request and the
// file based settings of the disgo command.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/s0up4200/disgo/environment"
)

const (
	// DefaultTimeout is applied to each request attempt
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the number of retries after a transport failure
	DefaultRetries = 3
	// DefaultRetryWait is the base delay between retries
	DefaultRetryWait = 500 * time.Millisecond

	// APIKeyHeader carries the API key
	APIKeyHeader = "X-Api-Key"
)

// ErrInvalidConfig indicates invalid client configuration
var ErrInvalidConfig = errors.New("invalid disgo configuration")

// Configuration is the immutable client configuration. It is safe to share
// between goroutines.
type Configuration struct {
	environment environment.Environment
	baseURL     string
	apiKey      string
	timeout     time.Duration
	retries     int
	retryWait   time.Duration
}

// New creates a Configuration for the given environment.
func New(env environment.Environment, opts ...Option) (*Configuration, error) {
	c := &Configuration{
		environment: env,
		timeout:     DefaultTimeout,
		retries:     DefaultRetries,
		retryWait:   DefaultRetryWait,
	}

	for _, opt := range opts {
		opt(c)
	}

	if !env.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidConfig, environment.ErrUnknownEnvironment, string(env))
	}
	if c.timeout < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if c.retries < 0 {
		return nil, fmt.Errorf("%w: retries must not be negative", ErrInvalidConfig)
	}
	if c.retryWait < 0 {
		return nil, fmt.Errorf("%w: retry wait must not be negative", ErrInvalidConfig)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.baseURL != "" {
		u, err := url.Parse(c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: base URL: %w", ErrInvalidConfig, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("%w: base URL must be absolute: %s", ErrInvalidConfig, c.baseURL)
		}
	}

	return c, nil
}

// Environment returns the active environment
func (c *Configuration) Environment() environment.Environment {
	return c.environment
}

// Timeout returns the per-attempt timeout
func (c *Configuration) Timeout() time.Duration {
	return c.timeout
}

// Retries returns the retry bound for transport failures
func (c *Configuration) Retries() int {
	return c.retries
}

// RetryWait returns the base backoff delay
func (c *Configuration) RetryWait() time.Duration {
	return c.retryWait
}

// BaseURL returns the base URL of the override or of the active environment.
// Every call returns a new value.
func (c *Configuration) BaseURL() (*url.URL, error) {
	if c.baseURL != "" {
		return url.Parse(c.baseURL)
	}
	return environment.BaseURL(c.environment)
}

// AuthHeaders returns the authentication headers derived from the credentials.
func (c *Configuration) AuthHeaders() http.Header {
	h := make(http.Header, 1)
	if c.apiKey != "" {
		h.Set(APIKeyHeader, c.apiKey)
	}
	return h
}
