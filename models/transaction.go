package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/s0up4200/disgo/optional"
)

// TransactionType is the kind of a Disgo transaction
type TransactionType int

const (
	// TransactionTypeTransfer moves tokens between accounts
	TransactionTypeTransfer TransactionType = iota
	// TransactionTypeDeploy deploys a smart contract
	TransactionTypeDeploy
	// TransactionTypeExecute calls a smart contract method
	TransactionTypeExecute
)

// String returns the string representation of a TransactionType
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeTransfer:
		return "TRANSFER"
	case TransactionTypeDeploy:
		return "DEPLOY"
	case TransactionTypeExecute:
		return "EXECUTE"
	default:
		return "UNKNOWN"
	}
}

// Transaction is a transaction stored on the ledger (wire name Datum).
type Transaction struct {
	Hash      string                 `json:"hash"`
	Type      TransactionType        `json:"type"`
	From      string                 `json:"from"`
	To        string                 `json:"to"`
	Value     int64                  `json:"value"`
	Time      int64                  `json:"time"`
	Signature string                 `json:"signature"`
	Code      optional.Field[string] `json:"code,omitzero"`
	Abi       optional.Field[string] `json:"abi,omitzero"`
	Method    optional.Field[string] `json:"method,omitzero"`
	Params    optional.Field[[]any]  `json:"params,omitzero"`
	Hertz     optional.Field[int64]  `json:"hertz,omitzero"`
	// FromName and ToName are nullable
	FromName optional.Field[string] `json:"fromName,omitzero"`
	ToName   optional.Field[string] `json:"toName,omitzero"`
}

// UnmarshalJSON rejects payloads without the required fields
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	return decodeRequired(data, (*alias)(t), "Transaction",
		"hash", "type", "from", "to", "value", "time", "signature")
}

// Timestamp converts the millisecond Time field into a time.Time
func (t *Transaction) Timestamp() time.Time {
	return time.UnixMilli(t.Time)
}

// IsContract reports whether the transaction deploys or executes a contract
func (t *Transaction) IsContract() bool {
	return t.Type == TransactionTypeDeploy || t.Type == TransactionTypeExecute
}

// Validate checks an outgoing transaction before it is submitted.
func (t *Transaction) Validate() error {
	const model = "Transaction"
	if err := requireString(model, "hash", t.Hash); err != nil {
		return err
	}
	if err := requireString(model, "from", t.From); err != nil {
		return err
	}
	if err := requireString(model, "signature", t.Signature); err != nil {
		return err
	}
	if t.Time <= 0 {
		return &FieldError{Model: model, Field: "time", Reason: "must be a positive millisecond timestamp"}
	}

	switch t.Type {
	case TransactionTypeTransfer:
		if err := requireString(model, "to", t.To); err != nil {
			return err
		}
	case TransactionTypeDeploy:
		if !t.Code.IsPresent() {
			return missing(model, "code")
		}
	case TransactionTypeExecute:
		if !t.Method.IsPresent() {
			return missing(model, "method")
		}
	default:
		return &FieldError{Model: model, Field: "type", Reason: fmt.Sprintf("unknown transaction type %d", int(t.Type))}
	}
	return nil
}

// SignTransactionRequest asks a development node to hash and sign a transaction.
type SignTransactionRequest struct {
	Type       TransactionType        `json:"type"`
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Value      int64                  `json:"value"`
	Time       int64                  `json:"time"`
	PrivateKey string                 `json:"privateKey"`
	Code       optional.Field[string] `json:"code,omitzero"`
	Abi        optional.Field[string] `json:"abi,omitzero"`
	Method     optional.Field[string] `json:"method,omitzero"`
	Params     optional.Field[[]any]  `json:"params,omitzero"`
}

// Validate checks the signing request
func (r *SignTransactionRequest) Validate() error {
	const model = "SignTransactionRequest"
	if err := requireString(model, "from", r.From); err != nil {
		return err
	}
	return requireString(model, "privateKey", r.PrivateKey)
}

// MarshalJSON fills in the current time when Time is unset
func (r SignTransactionRequest) MarshalJSON() ([]byte, error) {
	type alias SignTransactionRequest
	if r.Time == 0 {
		r.Time = time.Now().UnixMilli()
	}
	return json.Marshal(alias(r))
}
