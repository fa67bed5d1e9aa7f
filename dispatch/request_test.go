package dispatch

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestRequestURL(t *testing.T) {
	base := mustParse(t, "http://localhost:1975")

	tests := []struct {
		name string
		base *url.URL
		req  Request
		want string
	}{
		{
			name: "no placeholders",
			base: base,
			req:  Request{Method: http.MethodGet, Path: "/v1/delegates"},
			want: "http://localhost:1975/v1/delegates",
		},
		{
			name: "path parameter",
			base: base,
			req: Request{
				Method:     http.MethodGet,
				Path:       "/v1/statuses/{hash}",
				PathParams: map[string]string{"hash": "8f0a"},
			},
			want: "http://localhost:1975/v1/statuses/8f0a",
		},
		{
			name: "escaped parameter",
			base: base,
			req: Request{
				Method:     http.MethodGet,
				Path:       "/v1/artifacts/{hash}",
				PathParams: map[string]string{"hash": "a/b c"},
			},
			want: "http://localhost:1975/v1/artifacts/a%2Fb%20c",
		},
		{
			name: "query parameters",
			base: base,
			req: Request{
				Method: http.MethodGet,
				Path:   "/v1/transactions",
				Query:  url.Values{"page": {"2"}, "from": {"3ed2"}},
			},
			want: "http://localhost:1975/v1/transactions?from=3ed2&page=2",
		},
		{
			name: "base path kept",
			base: mustParse(t, "https://node.example.com/api/"),
			req:  Request{Method: http.MethodGet, Path: "/v1/delegates"},
			want: "https://node.example.com/api/v1/delegates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.req.URL(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}

	// base is not modified
	assert.Equal(t, "http://localhost:1975", base.String())
}

func TestRequestURLValidation(t *testing.T) {
	base := mustParse(t, "http://localhost:1975")

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{
			name:  "missing parameter",
			req:   Request{Method: http.MethodGet, Path: "/v1/accounts/{address}"},
			field: "address",
		},
		{
			name: "empty parameter",
			req: Request{
				Method:     http.MethodGet,
				Path:       "/v1/accounts/{address}",
				PathParams: map[string]string{"address": "  "},
			},
			field: "address",
		},
		{
			name:  "missing method",
			req:   Request{Path: "/v1/delegates"},
			field: "method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.URL(base)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
