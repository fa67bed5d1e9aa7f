// Package dispatch turns request descriptors into calls against the Disgo API
// and maps each response to a decoded value or a typed error.
//
// # Usage
//
//	cfg, err := config.New(environment.Production, config.WithAPIKey(key))
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := dispatch.NewClient(cfg, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	receipt, err := dispatch.Execute[models.Receipt](ctx, client, &dispatch.Request{
//		Method:     http.MethodGet,
//		Path:       "/v1/statuses/{hash}",
//		PathParams: map[string]string{"hash": hash},
//	})
//
// # Error Handling
//
// Every failure is one of four types:
//
//   - ValidationError: bad or missing arguments, detected before any network call
//   - NetworkError: the request could not be sent or no response arrived; retried
//     up to the configured bound with a linear backoff
//   - APIError: the node answered outside 2xx; never retried
//   - ResponseParsingError: a 2xx body that could not be decoded
//
// APIError carries a Kind taken from a single status-code table and matches
// the per-kind sentinels with errors.Is:
//
//	if errors.Is(err, dispatch.ErrRateLimited) {
//		// back off
//	}
package dispatch
