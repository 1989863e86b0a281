// Package errors provides the service error taxonomy and the single dispatch
// point that turns any raised value into a client-safe HTTP response.
//
// Every domain error satisfies ServiceError: it declares an HTTP status code
// and serializes itself into one or more Record values. Caller-caused faults
// (4xx) additionally satisfy ClientError. InternalServerError is the generic
// 5xx variant and the fallback for anything the dispatcher does not recognize.
//
// # Usage
//
//	if user == nil {
//	    return errors.NotFound("user")
//	}
//
//	resp := errors.Dispatch(err)
//	c.JSON(resp.Status, resp.Body)
//
// The package performs no I/O and no logging. Transport adapters live in the
// server package, diagnostics in logger and observability.
package errors
