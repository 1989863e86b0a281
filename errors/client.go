package errors

import (
	"fmt"
	"net/http"
)

var (
	_ ClientError = (*NotFoundError)(nil)
	_ ClientError = (*UnauthorizedError)(nil)
	_ ClientError = (*ForbiddenError)(nil)
	_ ClientError = (*UnprocessableEntityError)(nil)
	_ ClientError = (*RequestDataValidationError)(nil)
)

// --- NotFoundError ---

// NotFoundError reports that a requested resource does not exist (404).
type NotFoundError struct {
	Client
	resourceName string
}

// NotFound creates a NotFoundError for the named resource. An empty or
// whitespace-only name renders as "resource".
func NotFound(resourceName string) *NotFoundError {
	return &NotFoundError{resourceName: resourceName}
}

func (e *NotFoundError) Error() string      { return e.LogMessage() }
func (e *NotFoundError) LogMessage() string { return KindNotFound.String() }
func (e *NotFoundError) Code() int          { return http.StatusNotFound }
func (e *NotFoundError) Kind() Kind         { return KindNotFound }

// SerializeErrors implements ServiceError.
func (e *NotFoundError) SerializeErrors() []Record {
	name := normalize(e.resourceName)
	if name == "" {
		name = "resource"
	}
	return []Record{{
		Code:    e.Code(),
		Type:    e.Kind().String(),
		Message: fmt.Sprintf("Sorry, the requested %s was not found.", name),
	}}
}

// MarshalJSON renders the error envelope.
func (e *NotFoundError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }

// --- UnauthorizedError ---

// UnauthorizedError reports that the caller is not authenticated (401).
type UnauthorizedError struct {
	Client
}

// Unauthorized creates an UnauthorizedError.
func Unauthorized() *UnauthorizedError {
	return &UnauthorizedError{}
}

func (e *UnauthorizedError) Error() string      { return e.LogMessage() }
func (e *UnauthorizedError) LogMessage() string { return KindUnauthorized.String() }
func (e *UnauthorizedError) Code() int          { return http.StatusUnauthorized }
func (e *UnauthorizedError) Kind() Kind         { return KindUnauthorized }

// SerializeErrors implements ServiceError.
func (e *UnauthorizedError) SerializeErrors() []Record {
	return []Record{{
		Code:    e.Code(),
		Type:    e.Kind().String(),
		Message: "Oops! It seems you're not logged in. Please log in to continue.",
	}}
}

// MarshalJSON renders the error envelope.
func (e *UnauthorizedError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }

// --- ForbiddenError ---

// ForbiddenError reports that an authenticated caller may not perform the request (403).
type ForbiddenError struct {
	Client
	reason string
}

// Forbidden creates a ForbiddenError. The reason is trimmed and lowercased
// into "Access denied: <reason>."
func Forbidden(reason string) *ForbiddenError {
	return &ForbiddenError{reason: reason}
}

func (e *ForbiddenError) Error() string      { return e.LogMessage() }
func (e *ForbiddenError) LogMessage() string { return KindForbidden.String() }
func (e *ForbiddenError) Code() int          { return http.StatusForbidden }
func (e *ForbiddenError) Kind() Kind         { return KindForbidden }

// SerializeErrors implements ServiceError.
func (e *ForbiddenError) SerializeErrors() []Record {
	return []Record{{
		Code:    e.Code(),
		Type:    e.Kind().String(),
		Message: fmt.Sprintf("Access denied: %s.", normalize(e.reason)),
	}}
}

// MarshalJSON renders the error envelope.
func (e *ForbiddenError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }

// --- UnprocessableEntityError ---

// UnprocessableEntityError reports well-formed input that cannot be processed
// for semantic reasons (422).
type UnprocessableEntityError struct {
	Client
	reason string
}

// UnprocessableEntity creates an UnprocessableEntityError.
func UnprocessableEntity(reason string) *UnprocessableEntityError {
	return &UnprocessableEntityError{reason: reason}
}

func (e *UnprocessableEntityError) Error() string      { return e.LogMessage() }
func (e *UnprocessableEntityError) LogMessage() string { return KindUnprocessableEntity.String() }
func (e *UnprocessableEntityError) Code() int          { return http.StatusUnprocessableEntity }
func (e *UnprocessableEntityError) Kind() Kind         { return KindUnprocessableEntity }

// SerializeErrors implements ServiceError.
func (e *UnprocessableEntityError) SerializeErrors() []Record {
	return []Record{{
		Code:    e.Code(),
		Type:    e.Kind().String(),
		Message: fmt.Sprintf("Unable to process your request: %s.", normalize(e.reason)),
	}}
}

// MarshalJSON renders the error envelope.
func (e *UnprocessableEntityError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }
