package config

import "time"

// Option configures a Configuration.
type Option func(*Configuration)

// WithAPIKey sets the API key sent with every request.
func WithAPIKey(apiKey string) Option {
	return func(c *Configuration) {
		c.apiKey = apiKey
	}
}

// WithTimeout sets the timeout of a single request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Configuration) {
		c.timeout = timeout
	}
}

// WithRetries sets how many times a request is retried after a transport failure.
func WithRetries(retries int) Option {
	return func(c *Configuration) {
		c.retries = retries
	}
}

// WithRetryWait sets the base delay of the linear retry backoff.
func WithRetryWait(wait time.Duration) Option {
	return func(c *Configuration) {
		c.retryWait = wait
	}
}

// WithBaseURL overrides the environment base URL, e.g. for a self-hosted node.
func WithBaseURL(baseURL string) Option {
	return func(c *Configuration) {
		c.baseURL = baseURL
	}
}
