package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

const (
	pathTransactions = "/v1/transactions"
	pathTransaction  = "/v1/transactions/{hash}"
	pathStatus       = "/v1/statuses/{hash}"

	// DefaultReceiptConcurrency bounds GetReceipts
	DefaultReceiptConcurrency = 10
)

// ListTransactionsParams are the optional query parameters of List
type ListTransactionsParams struct {
	Page     int
	PageSize int
}

func (p ListTransactionsParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// ReceiptResult is the outcome of one hash in GetReceipts
type ReceiptResult struct {
	Hash    string
	Receipt models.Receipt
	Err     error
}

// TransactionsController groups the transaction endpoints
type TransactionsController struct {
	client *dispatch.Client
}

// NewTransactionsController creates a TransactionsController
func NewTransactionsController(client *dispatch.Client) *TransactionsController {
	return &TransactionsController{client: client}
}

// List retrieves a page of transactions
func (c *TransactionsController) List(ctx context.Context, params ListTransactionsParams) (models.ListTransactionsResponse, error) {
	if params.Page < 0 {
		return models.ListTransactionsResponse{}, &dispatch.ValidationError{Field: "page", Reason: "must not be negative"}
	}
	if params.PageSize < 0 {
		return models.ListTransactionsResponse{}, &dispatch.ValidationError{Field: "pageSize", Reason: "must not be negative"}
	}

	return dispatch.Execute[models.ListTransactionsResponse](ctx, c.client, &dispatch.Request{
		Method: http.MethodGet,
		Path:   pathTransactions,
		Query:  params.query(),
	})
}

// Get retrieves a transaction by hash
func (c *TransactionsController) Get(ctx context.Context, hash string) (models.TransactionResponse, error) {
	if err := requireArg("hash", hash); err != nil {
		return models.TransactionResponse{}, err
	}

	return dispatch.Execute[models.TransactionResponse](ctx, c.client, &dispatch.Request{
		Method:     http.MethodGet,
		Path:       pathTransaction,
		PathParams: map[string]string{"hash": hash},
	})
}

// Create submits a signed transaction and returns its initial receipt
func (c *TransactionsController) Create(ctx context.Context, tx models.Transaction) (models.Receipt, error) {
	if err := validateBody(&tx); err != nil {
		return models.Receipt{}, err
	}

	return dispatch.Execute[models.Receipt](ctx, c.client, &dispatch.Request{
		Method: http.MethodPost,
		Path:   pathTransactions,
		Body:   tx,
	})
}

// GetReceipt retrieves the processing status of a transaction
func (c *TransactionsController) GetReceipt(ctx context.Context, hash string) (models.Receipt, error) {
	if err := requireArg("hash", hash); err != nil {
		return models.Receipt{}, err
	}

	return dispatch.Execute[models.Receipt](ctx, c.client, &dispatch.Request{
		Method:     http.MethodGet,
		Path:       pathStatus,
		PathParams: map[string]string{"hash": hash},
	})
}

// GetReceipts fetches receipts concurrently. Results keep the order of hashes
// and a failed hash does not stop the others; its error is kept in the
// result. The returned error is only set when an argument is invalid.
func (c *TransactionsController) GetReceipts(ctx context.Context, hashes ...string) ([]ReceiptResult, error) {
	for _, hash := range hashes {
		if err := requireArg("hash", hash); err != nil {
			return nil, err
		}
	}

	results := make([]ReceiptResult, len(hashes))
	if len(hashes) == 0 {
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(DefaultReceiptConcurrency)

	for i, hash := range hashes {
		g.Go(func() error {
			receipt, err := c.GetReceipt(ctx, hash)
			results[i] = ReceiptResult{Hash: hash, Receipt: receipt, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
