package auth

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/kbukum/svcerrors/errors"
)

// TokenValidator validates a token string and returns the parsed claims.
// Middleware depends on this interface rather than on a specific token
// format.
type TokenValidator interface {
	ValidateToken(token string) (any, error)
}

// TokenValidatorFunc adapts an ordinary function to the TokenValidator interface.
//
//	validator := auth.TokenValidatorFunc(jwtSvc.ValidatorFunc())
type TokenValidatorFunc func(token string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(token string) (any, error) {
	return f(token)
}

// Subject is implemented by claims that name the roles or groups a caller
// acts as. Permission checks run against these subjects.
type Subject interface {
	Subjects() []string
}

var (
	// ErrMissingToken is the reason recorded when no Authorization header is sent.
	ErrMissingToken = stderrors.New("authorization header required")
	// ErrMalformedToken is the reason recorded for a non-Bearer header.
	ErrMalformedToken = stderrors.New("invalid authorization header format")
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMalformedToken
	}
	return strings.TrimSpace(token), nil
}

// Authenticate validates the bearer token in header. Every failure wraps an
// UnauthorizedError, so it dispatches as a 401 while the error string keeps
// the reason for logs.
func Authenticate(v TokenValidator, header string) (any, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, Unauthenticated(err)
	}
	claims, err := v.ValidateToken(token)
	if err != nil {
		return nil, Unauthenticated(err)
	}
	return claims, nil
}

// Unauthenticated wraps reason in an UnauthorizedError.
func Unauthenticated(reason error) error {
	if reason == nil {
		return errors.Unauthorized()
	}
	return fmt.Errorf("%w: %w", errors.Unauthorized(), reason)
}
