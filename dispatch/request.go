package dispatch

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// Request describes a single API call. Path may contain {name} placeholders
// filled from PathParams. A Request must not be modified once passed to Do.
type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Header     http.Header
	// Body is encoded as JSON when not nil
	Body any
}

// URL resolves the request against base. An empty placeholder value is a
// ValidationError.
func (r *Request) URL(base *url.URL) (*url.URL, error) {
	if strings.TrimSpace(r.Method) == "" {
		return nil, &ValidationError{Field: "method", Reason: "HTTP method is required"}
	}
	if base == nil {
		return nil, &ValidationError{Field: "baseURL", Reason: "base URL is required"}
	}

	var verr *ValidationError
	var escaped, plain strings.Builder
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(r.Path, -1) {
		literal := r.Path[last:loc[0]]
		escaped.WriteString(literal)
		plain.WriteString(literal)

		name := r.Path[loc[2]:loc[3]]
		value, ok := r.PathParams[name]
		if (!ok || strings.TrimSpace(value) == "") && verr == nil {
			verr = &ValidationError{Field: name, Reason: "required path parameter is empty"}
		}
		escaped.WriteString(url.PathEscape(value))
		plain.WriteString(value)
		last = loc[1]
	}
	if verr != nil {
		return nil, verr
	}
	escaped.WriteString(r.Path[last:])
	plain.WriteString(r.Path[last:])

	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + plain.String()
	u.RawPath = strings.TrimRight(base.EscapedPath(), "/") + escaped.String()
	u.RawQuery = ""
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}
	u.Fragment = ""

	return &u, nil
}
