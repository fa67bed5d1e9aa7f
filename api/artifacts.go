package api

import (
	"context"
	"net/http"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

const (
	pathArtifacts = "/v1/artifacts"
	pathArtifact  = "/v1/artifacts/{hash}"
)

// ArtifactsController groups the artifact endpoints. Nodes announce these as
// coming soon and may answer 404 or 405 until they ship.
type ArtifactsController struct {
	client *dispatch.Client
}

// NewArtifactsController creates an ArtifactsController
func NewArtifactsController(client *dispatch.Client) *ArtifactsController {
	return &ArtifactsController{client: client}
}

// Get retrieves artifact metadata by hash
func (c *ArtifactsController) Get(ctx context.Context, hash string) (models.Artifact, error) {
	if err := requireArg("hash", hash); err != nil {
		return models.Artifact{}, err
	}

	return dispatch.Execute[models.Artifact](ctx, c.client, &dispatch.Request{
		Method:     http.MethodGet,
		Path:       pathArtifact,
		PathParams: map[string]string{"hash": hash},
	})
}

// Upload stores an artifact
func (c *ArtifactsController) Upload(ctx context.Context, req models.UploadArtifactRequest) (models.Receipt, error) {
	if err := validateBody(&req); err != nil {
		return models.Receipt{}, err
	}

	return dispatch.Execute[models.Receipt](ctx, c.client, &dispatch.Request{
		Method: http.MethodPost,
		Path:   pathArtifacts,
		Body:   req,
	})
}
