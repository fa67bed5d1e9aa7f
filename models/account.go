package models

import (
	"time"

	"github.com/s0up4200/disgo/optional"
)

// Account is a ledger account
type Account struct {
	Address string                    `json:"address"`
	Balance int64                     `json:"balance"`
	Name    optional.Field[string]    `json:"name,omitzero"`
	Hertz   optional.Field[int64]     `json:"hertz,omitzero"`
	Updated optional.Field[time.Time] `json:"updated,omitzero"`
	Created optional.Field[time.Time] `json:"created,omitzero"`
}

// UnmarshalJSON rejects payloads without the required fields
func (a *Account) UnmarshalJSON(data []byte) error {
	type alias Account
	return decodeRequired(data, (*alias)(a), "Account", "address", "balance")
}
