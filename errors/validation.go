package errors

import (
	"net/http"
	"slices"
)

// Context names the part of the request that failed validation.
type Context string

// Request parts a RequestDataValidationError can point at.
const (
	ContextBody   Context = "body"
	ContextQuery  Context = "query"
	ContextPath   Context = "path"
	ContextHeader Context = "header"
	ContextCookie Context = "cookie"
)

// Valid reports whether c is one of the known request parts.
func (c Context) Valid() bool {
	switch c {
	case ContextBody, ContextQuery, ContextPath, ContextHeader, ContextCookie:
		return true
	default:
		return false
	}
}

// Issue is one violated constraint. Path elements are string (object keys)
// or int (array indices), e.g. ["user", "emails", 0].
type Issue struct {
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

// clone copies i; a nil path becomes empty so it serializes as [].
func (i Issue) clone() Issue {
	path := slices.Clone(i.Path)
	if path == nil {
		path = []any{}
	}
	return Issue{Message: i.Message, Path: path}
}

// genericIssue stands in when a validation error is raised without issues.
var genericIssue = Issue{Message: "Invalid request data.", Path: []any{}}

// RequestDataValidationError reports request data that does not match the
// expected schema (400). It serializes one Record per Issue so the caller
// sees every problem at once.
type RequestDataValidationError struct {
	Client
	issues  []Issue
	context Context
}

var _ ServiceError = (*RequestDataValidationError)(nil)

// RequestDataValidation creates a RequestDataValidationError. The issues are
// copied; an empty list is replaced by a single generic issue. An unknown
// context falls back to ContextBody.
func RequestDataValidation(issues []Issue, context Context) *RequestDataValidationError {
	if !context.Valid() {
		context = ContextBody
	}
	copied := make([]Issue, 0, max(len(issues), 1))
	for _, issue := range issues {
		copied = append(copied, issue.clone())
	}
	if len(copied) == 0 {
		copied = append(copied, genericIssue.clone())
	}
	return &RequestDataValidationError{issues: copied, context: context}
}

func (e *RequestDataValidationError) Error() string      { return e.LogMessage() }
func (e *RequestDataValidationError) LogMessage() string { return KindRequestDataValidation.String() }
func (e *RequestDataValidationError) Code() int          { return http.StatusBadRequest }
func (e *RequestDataValidationError) Kind() Kind         { return KindRequestDataValidation }

// Context returns the request part that was validated.
func (e *RequestDataValidationError) Context() Context { return e.context }

// Issues returns a copy of the collected issues.
func (e *RequestDataValidationError) Issues() []Issue {
	out := make([]Issue, len(e.issues))
	for i, issue := range e.issues {
		out[i] = issue.clone()
	}
	return out
}

// SerializeErrors implements ServiceError. Each Record's path is the context
// followed by the issue path, and its details hold the raw issue.
func (e *RequestDataValidationError) SerializeErrors() []Record {
	records := make([]Record, 0, len(e.issues))
	for _, issue := range e.issues {
		path := make([]any, 0, len(issue.Path)+1)
		path = append(path, string(e.context))
		path = append(path, issue.Path...)
		records = append(records, Record{
			Code:    e.Code(),
			Type:    e.Kind().String(),
			Message: issue.Message,
			Path:    path,
			Details: []any{issue.clone()},
		})
	}
	return records
}

// MarshalJSON renders the error envelope.
func (e *RequestDataValidationError) MarshalJSON() ([]byte, error) { return marshalEnvelope(e) }
