// Package authctx carries authenticated claims through a request context.
//
//	ctx = authctx.Set(ctx, claims)
//	claims, err := authctx.Require[*jwt.Claims](ctx)
package authctx

import (
	"context"

	"github.com/kbukum/svcerrors/errors"
)

type contextKey struct{}

var claimsKey = contextKey{}

// Set stores authentication claims in the context.
func Set(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves typed claims from the context. It reports false when no
// claims are stored or they have another type.
func Get[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsKey).(T)
	return claims, ok
}

// Require retrieves typed claims from the context, or an UnauthorizedError
// when the request was not authenticated.
func Require[T any](ctx context.Context) (T, error) {
	claims, ok := Get[T](ctx)
	if !ok {
		var zero T
		return zero, errors.Unauthorized()
	}
	return claims, nil
}
