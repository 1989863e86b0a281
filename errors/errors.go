package errors

import (
	"encoding/json"
	"strings"
)

// Record is the wire shape of a single error occurrence.
type Record struct {
	// Code is the HTTP status and always equals the owning error's Code().
	Code int `json:"code"`
	// Type is the stable discriminator, the variant name.
	Type string `json:"type"`
	// Message is safe to show to an end user.
	Message string `json:"message"`
	// Path locates the offending request segment. Elements are string or int.
	Path []any `json:"path,omitempty"`
	// Details carries diagnostic payload and should be dropped in production.
	Details []any `json:"details,omitempty"`
}

// ServiceError is the contract every domain error satisfies.
//
// Code must be fixed by the concrete type before SerializeErrors is called.
// SerializeErrors is pure, returns at least one Record, and every Record
// carries Code().
type ServiceError interface {
	error
	Code() int
	Kind() Kind
	// LogMessage is for diagnostics only and never reaches a Record.
	LogMessage() string
	SerializeErrors() []Record
}

// ClientError is a ServiceError raised intentionally for a caller-caused (4xx) fault.
type ClientError interface {
	ServiceError
	clientError()
}

// Client marks an embedding type as a ClientError. Custom 4xx variants embed
// it and implement the remaining ServiceError methods:
//
//	type ConflictError struct {
//	    errors.Client
//	}
type Client struct{}

func (Client) clientError() {}

// Kind reports KindClient unless the embedding type overrides it.
func (Client) Kind() Kind { return KindClient }

// marshalEnvelope renders e as {"errors": [...]}.
func marshalEnvelope(e ServiceError) ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

// normalize trims and lowercases user-facing fragments.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
