package errors

import (
	stderrors "errors"
)

// Envelope is the JSON body returned to clients: {"errors": [...]}.
type Envelope struct {
	Errors []Record `json:"errors"`
}

// ToJSON builds the envelope for e. It is the only externally observed
// representation of a ServiceError.
func ToJSON(e ServiceError) Envelope {
	return Envelope{Errors: e.SerializeErrors()}
}

// WithoutDetails returns a copy of the envelope with every Record's details
// removed, for environments that must not expose diagnostics.
func (env Envelope) WithoutDetails() Envelope {
	records := make([]Record, len(env.Errors))
	for i, r := range env.Errors {
		r.Details = nil
		records[i] = r
	}
	return Envelope{Errors: records}
}

// IsServiceError checks if err is, or wraps, a ServiceError.
func IsServiceError(err error) bool {
	_, ok := AsServiceError(err)
	return ok
}

// AsServiceError extracts the first ServiceError in err's chain.
func AsServiceError(err error) (ServiceError, bool) {
	var se ServiceError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsClientError checks if err is, or wraps, a ClientError.
func IsClientError(err error) bool {
	var ce ClientError
	return stderrors.As(err, &ce)
}
