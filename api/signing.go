package api

import (
	"context"
	"net/http"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

const pathSign = "/v1/transactions/sign"

// SigningController signs transactions on a development node. The private key
// is passed through to the node as given.
type SigningController struct {
	client *dispatch.Client
}

// NewSigningController creates a SigningController
func NewSigningController(client *dispatch.Client) *SigningController {
	return &SigningController{client: client}
}

// Sign returns the hashed and signed transaction
func (c *SigningController) Sign(ctx context.Context, req models.SignTransactionRequest) (models.Transaction, error) {
	if err := validateBody(&req); err != nil {
		return models.Transaction{}, err
	}

	return dispatch.Execute[models.Transaction](ctx, c.client, &dispatch.Request{
		Method: http.MethodPost,
		Path:   pathSign,
		Body:   req,
	})
}
