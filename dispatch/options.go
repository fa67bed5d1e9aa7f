package dispatch

import "net/http"

// DefaultUserAgent is sent unless WithUserAgent is used
const DefaultUserAgent = "disgo-go"

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	userAgent  string
}

// WithHTTPClient sets the underlying HTTP client. Its Timeout is used as the
// per-attempt timeout instead of the configured one.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}
