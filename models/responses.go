package models

import "github.com/s0up4200/disgo/optional"

// ListTransactionsResponse wraps a list of transactions
type ListTransactionsResponse struct {
	Status              string                 `json:"status"`
	HumanReadableStatus optional.Field[string] `json:"humanReadableStatus,omitzero"`
	Data                []Transaction          `json:"data"`
}

// UnmarshalJSON rejects payloads without the required fields
func (r *ListTransactionsResponse) UnmarshalJSON(data []byte) error {
	type alias ListTransactionsResponse
	return decodeRequired(data, (*alias)(r), "ListTransactionsResponse", "status", "data")
}

// ListDelegatesResponse wraps the current delegate list
type ListDelegatesResponse struct {
	Status              string                 `json:"status"`
	HumanReadableStatus optional.Field[string] `json:"humanReadableStatus,omitzero"`
	Data                []Delegate             `json:"data"`
}

// UnmarshalJSON rejects payloads without the required fields
func (r *ListDelegatesResponse) UnmarshalJSON(data []byte) error {
	type alias ListDelegatesResponse
	return decodeRequired(data, (*alias)(r), "ListDelegatesResponse", "status", "data")
}

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Status              string                 `json:"status"`
	HumanReadableStatus optional.Field[string] `json:"humanReadableStatus,omitzero"`
	Data                Transaction            `json:"data"`
}

// UnmarshalJSON rejects payloads without the required fields
func (r *TransactionResponse) UnmarshalJSON(data []byte) error {
	type alias TransactionResponse
	return decodeRequired(data, (*alias)(r), "TransactionResponse", "status", "data")
}

// AccountResponse wraps a single account
type AccountResponse struct {
	Status              string                 `json:"status"`
	HumanReadableStatus optional.Field[string] `json:"humanReadableStatus,omitzero"`
	Data                Account                `json:"data"`
}

// UnmarshalJSON rejects payloads without the required fields
func (r *AccountResponse) UnmarshalJSON(data []byte) error {
	type alias AccountResponse
	return decodeRequired(data, (*alias)(r), "AccountResponse", "status", "data")
}
