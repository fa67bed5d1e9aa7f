package models

import (
	"time"

	"github.com/s0up4200/disgo/optional"
)

// ReceiptStatus is the processing state reported for a transaction
type ReceiptStatus string

const (
	ReceiptStatusPending            ReceiptStatus = "Pending"
	ReceiptStatusOk                 ReceiptStatus = "Ok"
	ReceiptStatusNotDelegate        ReceiptStatus = "NotDelegate"
	ReceiptStatusInvalidTransaction ReceiptStatus = "InvalidTransaction"
	ReceiptStatusInsufficientTokens ReceiptStatus = "InsufficientTokens"
	ReceiptStatusDuplicate          ReceiptStatus = "DuplicateTransaction"
	ReceiptStatusTimeout            ReceiptStatus = "Timeout"
	ReceiptStatusInternalError      ReceiptStatus = "InternalError"
)

// IsPending reports whether the transaction has not been processed yet
func (s ReceiptStatus) IsPending() bool {
	return s == ReceiptStatusPending
}

// IsOk reports whether the transaction was accepted
func (s ReceiptStatus) IsOk() bool {
	return s == ReceiptStatusOk
}

// Receipt describes the outcome of a submitted transaction
type Receipt struct {
	TransactionHash     string                    `json:"transactionHash"`
	Status              ReceiptStatus             `json:"status"`
	HumanReadableStatus optional.Field[string]    `json:"humanReadableStatus,omitzero"`
	ContractAddress     optional.Field[string]    `json:"contractAddress,omitzero"`
	ContractResult      optional.Field[[]any]     `json:"contractResult,omitzero"`
	Created             optional.Field[time.Time] `json:"created,omitzero"`
}

// UnmarshalJSON rejects payloads without the required fields
func (r *Receipt) UnmarshalJSON(data []byte) error {
	type alias Receipt
	return decodeRequired(data, (*alias)(r), "Receipt", "transactionHash", "status")
}
