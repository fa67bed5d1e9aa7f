package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/disgo/config"
	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/environment"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, baseURL string, opts ...dispatch.Option) *dispatch.Client {
	t.Helper()
	cfg, err := config.New(environment.Sandbox,
		config.WithBaseURL(baseURL),
		config.WithAPIKey("test-key"),
		config.WithRetries(1),
		config.WithRetryWait(time.Millisecond),
	)
	require.NoError(t, err)

	client, err := dispatch.NewClient(cfg, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

// recordedRequest is what a test server saw
type recordedRequest struct {
	method string
	path   string
	query  string
	apiKey string
	body   string
}

type recorder struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (r *recorder) requests() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.seen...)
}

// newServer replies with the given status and body and records every request
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.seen = append(rec.seen, recordedRequest{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			apiKey: r.Header.Get(config.APIKeyHeader),
			body:   string(data),
		})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

// countingClient fails the test if it is ever asked to send a request
func countingClient(calls *atomic.Int32) dispatch.Option {
	return dispatch.WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, io.ErrUnexpectedEOF
		}),
	})
}

func TestEmptyArgumentsFailWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, "http://disgo.invalid", countingClient(&calls))
	ctx := context.Background()

	transactions := NewTransactionsController(client)
	accounts := NewAccountsController(client)
	artifacts := NewArtifactsController(client)

	tests := []struct {
		name  string
		field string
		call  func() error
	}{
		{"transactions get", "hash", func() error { _, err := transactions.Get(ctx, ""); return err }},
		{"transactions receipt", "hash", func() error { _, err := transactions.GetReceipt(ctx, " "); return err }},
		{"transactions receipts", "hash", func() error { _, err := transactions.GetReceipts(ctx, "a", ""); return err }},
		{"transactions list", "page", func() error {
			_, err := transactions.List(ctx, ListTransactionsParams{Page: -1})
			return err
		}},
		{"transactions list page size", "pageSize", func() error {
			_, err := transactions.List(ctx, ListTransactionsParams{Page: 1, PageSize: -10})
			return err
		}},
		{"accounts get", "address", func() error { _, err := accounts.Get(ctx, ""); return err }},
		{"accounts sent", "address", func() error { _, err := accounts.ListSent(ctx, ""); return err }},
		{"accounts received", "address", func() error { _, err := accounts.ListReceived(ctx, ""); return err }},
		{"artifacts get", "hash", func() error { _, err := artifacts.Get(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var validationErr *dispatch.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	assert.Equal(t, int32(0), calls.Load())
}
