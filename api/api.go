package api

import (
	"context"
	"errors"
	"strings"

	"github.com/s0up4200/disgo/dispatch"
	"github.com/s0up4200/disgo/models"
)

// TransactionsAPI defines the transaction operations
type TransactionsAPI interface {
	// List retrieves a page of transactions
	List(ctx context.Context, params ListTransactionsParams) (models.ListTransactionsResponse, error)

	// Get retrieves a transaction by hash
	Get(ctx context.Context, hash string) (models.TransactionResponse, error)

	// Create submits a signed transaction
	Create(ctx context.Context, tx models.Transaction) (models.Receipt, error)

	// GetReceipt retrieves the processing status of a transaction
	GetReceipt(ctx context.Context, hash string) (models.Receipt, error)

	// GetReceipts retrieves several receipts concurrently
	GetReceipts(ctx context.Context, hashes ...string) ([]ReceiptResult, error)
}

// AccountsAPI defines the account operations
type AccountsAPI interface {
	Get(ctx context.Context, address string) (models.AccountResponse, error)
	ListSent(ctx context.Context, address string) (models.ListTransactionsResponse, error)
	ListReceived(ctx context.Context, address string) (models.ListTransactionsResponse, error)
}

// DelegatesAPI defines the delegate operations
type DelegatesAPI interface {
	List(ctx context.Context) (models.ListDelegatesResponse, error)
}

// ArtifactsAPI defines the artifact operations
type ArtifactsAPI interface {
	Get(ctx context.Context, hash string) (models.Artifact, error)
	Upload(ctx context.Context, req models.UploadArtifactRequest) (models.Receipt, error)
}

// SigningAPI defines the signing operations of development nodes
type SigningAPI interface {
	Sign(ctx context.Context, req models.SignTransactionRequest) (models.Transaction, error)
}

var (
	_ TransactionsAPI = (*TransactionsController)(nil)
	_ AccountsAPI     = (*AccountsController)(nil)
	_ DelegatesAPI    = (*DelegatesController)(nil)
	_ ArtifactsAPI    = (*ArtifactsController)(nil)
	_ SigningAPI      = (*SigningController)(nil)
)

func requireArg(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &dispatch.ValidationError{Field: name, Reason: "required argument is empty"}
	}
	return nil
}

type validator interface {
	Validate() error
}

func validateBody(body validator) error {
	err := body.Validate()
	if err == nil {
		return nil
	}

	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		return &dispatch.ValidationError{Field: fieldErr.Field, Reason: fieldErr.Reason, Err: err}
	}
	return &dispatch.ValidationError{Field: "body", Reason: err.Error(), Err: err}
}
