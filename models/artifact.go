package models

import (
	"time"

	"github.com/s0up4200/disgo/optional"
)

// Artifact is a stored blob such as a contract ABI or source file
type Artifact struct {
	Hash        string                    `json:"hash"`
	Name        string                    `json:"name"`
	ContentType optional.Field[string]    `json:"contentType,omitzero"`
	Size        optional.Field[int64]     `json:"size,omitzero"`
	Created     optional.Field[time.Time] `json:"created,omitzero"`
}

// UnmarshalJSON rejects payloads without the required fields
func (a *Artifact) UnmarshalJSON(data []byte) error {
	type alias Artifact
	return decodeRequired(data, (*alias)(a), "Artifact", "hash", "name")
}

// UploadArtifactRequest is the body of an artifact upload. Content is base64
// encoded by encoding/json.
type UploadArtifactRequest struct {
	Name        string                 `json:"name"`
	Content     []byte                 `json:"content"`
	ContentType optional.Field[string] `json:"contentType,omitzero"`
}

// Validate checks the upload request
func (r *UploadArtifactRequest) Validate() error {
	const model = "UploadArtifactRequest"
	if err := requireString(model, "name", r.Name); err != nil {
		return err
	}
	if len(r.Content) == 0 {
		return missing(model, "content")
	}
	return nil
}
