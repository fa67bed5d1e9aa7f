package api

import (
	"context"
	"net/http"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

const (
	pathAccount          = "/v1/accounts/{address}"
	pathTransactionsFrom = "/v1/transactions/from/{address}"
	pathTransactionsTo   = "/v1/transactions/to/{address}"
)

// AccountsController groups the account endpoints
type AccountsController struct {
	client *dispatch.Client
}

// NewAccountsController creates an AccountsController
func NewAccountsController(client *dispatch.Client) *AccountsController {
	return &AccountsController{client: client}
}

// Get retrieves an account by address
func (c *AccountsController) Get(ctx context.Context, address string) (models.AccountResponse, error) {
	if err := requireArg("address", address); err != nil {
		return models.AccountResponse{}, err
	}

	return dispatch.Execute[models.AccountResponse](ctx, c.client, &dispatch.Request{
		Method:     http.MethodGet,
		Path:       pathAccount,
		PathParams: map[string]string{"address": address},
	})
}

// ListSent retrieves the transactions sent by an account
func (c *AccountsController) ListSent(ctx context.Context, address string) (models.ListTransactionsResponse, error) {
	return c.listTransactions(ctx, pathTransactionsFrom, address)
}

// ListReceived retrieves the transactions received by an account
func (c *AccountsController) ListReceived(ctx context.Context, address string) (models.ListTransactionsResponse, error) {
	return c.listTransactions(ctx, pathTransactionsTo, address)
}

func (c *AccountsController) listTransactions(ctx context.Context, path, address string) (models.ListTransactionsResponse, error) {
	if err := requireArg("address", address); err != nil {
		return models.ListTransactionsResponse{}, err
	}

	return dispatch.Execute[models.ListTransactionsResponse](ctx, c.client, &dispatch.Request{
		Method:     http.MethodGet,
		Path:       path,
		PathParams: map[string]string{"address": address},
	})
}
