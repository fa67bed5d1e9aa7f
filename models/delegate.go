package models

import (
	"fmt"
	"net"
	"strconv"

	"github.com/s0up4200/disgo/optional"
)

// HTTPEndpoint is the REST address of a node
type HTTPEndpoint struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// UnmarshalJSON rejects payloads without the required fields
func (e *HTTPEndpoint) UnmarshalJSON(data []byte) error {
	type alias HTTPEndpoint
	return decodeRequired(data, (*alias)(e), "HTTPEndpoint", "host", "port")
}

// Address returns host:port
func (e HTTPEndpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// URL returns the endpoint as an http URL
func (e HTTPEndpoint) URL() string {
	return fmt.Sprintf("http://%s", e.Address())
}

// GRPCEndpoint is the gRPC address of a node
type GRPCEndpoint struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// UnmarshalJSON rejects payloads without the required fields
func (e *GRPCEndpoint) UnmarshalJSON(data []byte) error {
	type alias GRPCEndpoint
	return decodeRequired(data, (*alias)(e), "GRPCEndpoint", "host", "port")
}

// Address returns host:port
func (e GRPCEndpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Delegate is a node elected to validate transactions (wire name Datum1).
type Delegate struct {
	Address      string                       `json:"address"`
	HTTPEndpoint HTTPEndpoint                 `json:"httpEndpoint"`
	GRPCEndpoint optional.Field[GRPCEndpoint] `json:"grpcEndpoint,omitzero"`
	Type         optional.Field[string]       `json:"type,omitzero"`
}

// UnmarshalJSON rejects payloads without the required fields
func (d *Delegate) UnmarshalJSON(data []byte) error {
	type alias Delegate
	return decodeRequired(data, (*alias)(d), "Delegate", "address", "httpEndpoint")
}
