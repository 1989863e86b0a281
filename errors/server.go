package errors

import (
	"fmt"
	"net/http"
)

const internalServerMessage = "Oops! Something went wrong on our end. Please try again later."

// InternalServerError is the generic 500 variant. Its client message never
// varies; the log message and cause stay on the server side.
type InternalServerError struct {
	logMessage string
	cause      error
}

var _ ServiceError = (*InternalServerError)(nil)

// Internal creates an InternalServerError. cause may be nil.
func Internal(logMessage string, cause error) *InternalServerError {
	return &InternalServerError{logMessage: logMessage, cause: cause}
}

// Error returns the log message and, when present, the cause.
func (e *InternalServerError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.logMessage, e.cause)
	}
	return e.logMessage
}

// Unwrap returns the underlying cause.
func (e *InternalServerError) Unwrap() error { return e.cause }

// Cause returns the underlying cause, which is never serialized.
func (e *InternalServerError) Cause() error { return e.cause }

func (e *InternalServerError) LogMessage() string { return e.logMessage }
func (e *InternalServerError) Code() int          { return http.StatusInternalServerError }
func (e *InternalServerError) Kind() Kind         { return KindInternalServer }

// SerializeErrors implements ServiceError.
func (e *InternalServerError) SerializeErrors() []Record {
	return []Record{{
		Code:    e.Code(),
		Type:    e.Kind().String(),
		Message: internalServerMessage,
	}}
}

// MarshalJSON renders the error envelope.
func (e *InternalServerError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }
