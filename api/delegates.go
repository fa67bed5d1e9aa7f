package api

import (
	"context"
	"net/http"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

const pathDelegates = "/v1/delegates"

// DelegatesController groups the delegate endpoints
type DelegatesController struct {
	client *dispatch.Client
}

// NewDelegatesController creates a DelegatesController
func NewDelegatesController(client *dispatch.Client) *DelegatesController {
	return &DelegatesController{client: client}
}

// List retrieves the current delegates
func (c *DelegatesController) List(ctx context.Context) (models.ListDelegatesResponse, error) {
	return dispatch.Execute[models.ListDelegatesResponse](ctx, c.client, &dispatch.Request{
		Method: http.MethodGet,
		Path:   pathDelegates,
	})
}
