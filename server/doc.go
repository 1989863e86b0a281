// Package server renders dispatched service errors over HTTP. It provides a
// Gin server behind an h2c handler, helpers that write exactly one JSON error
// envelope per request, and request binding that reports bad input as a
// RequestDataValidationError.
//
// # Middleware
//
// ApplyMiddleware installs (server/middleware):
//
//   - RequestID: request ID generation and propagation
//   - ErrorHandler: dispatch, logging and telemetry of c.Error values
//   - Recovery: panics dispatched like any other raised value
//   - RequestLogger and HTTPRecovery around the whole handler
//
// Unknown routes and methods respond with a NotFoundError.
package server
