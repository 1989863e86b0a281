package logger

import (
	"time"

	"github.com/kbukum/svcerrors/errors"
)

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldErrorKind = "error_kind"
	FieldErrorType = "error_type"
	FieldLogMsg    = "log_message"
	FieldCause     = "cause"
	FieldMethod    = "method"
	FieldPath      = "path"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}

// ServiceErrorFields describes a dispatched error for the server-side log:
// status, variant, record type, log message and, for 5xx, the hidden cause.
func ServiceErrorFields(resp errors.Response) map[string]interface{} {
	fields := map[string]interface{}{
		FieldStatus: resp.Status,
	}
	if len(resp.Body.Errors) > 0 {
		fields[FieldErrorType] = resp.Body.Errors[0].Type
	}
	if resp.Err == nil {
		return fields
	}
	fields[FieldErrorKind] = resp.Err.Kind().String()
	fields[FieldLogMsg] = resp.Err.LogMessage()
	if ise, ok := resp.Err.(*errors.InternalServerError); ok && ise.Cause() != nil {
		fields[FieldCause] = ise.Cause().Error()
	}
	return fields
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
