// Package models contains the JSON data types exchanged with the Disgo API.
//
// Plain struct members are required: they are always encoded and decoding
// fails with a *FieldError when one is missing or null. Members of type
// optional.Field are optional; absent values are left out of encoded payloads
// and unknown keys in responses are ignored.
//
// Wire names from the API documentation map as follows:
//
//	Datum           -> Transaction
//	Datum1          -> Delegate
//	HttpEndpoint    -> HTTPEndpoint
//	GrpcEndpoint    -> GRPCEndpoint
package models
