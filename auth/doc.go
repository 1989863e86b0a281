// Package auth provides authentication building blocks that report failures
// as UnauthorizedError and ForbiddenError values.
//
// Subpackages:
//
//   - auth/jwt:        generic HMAC JWT token service
//   - auth/authctx:    request context propagation for claims
//   - auth/permission: wildcard permission checks producing ForbiddenError
//
// The top-level package provides the shared TokenValidator contract, bearer
// token extraction and the composable Config:
//
//	auth:
//	  enabled: true
//	  jwt:
//	    secret: "my-secret"
//	    access_token_ttl: "15m"
package auth
