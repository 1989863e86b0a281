package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/svcerrors/auth"
	"github.com/kbukum/svcerrors/auth/authctx"
	"github.com/kbukum/svcerrors/auth/permission"
	"github.com/kbukum/svcerrors/errors"
)

// ClaimsKey is the gin context key holding validated claims.
const ClaimsKey = "claims"

// AuthConfig configures the bearer authentication middleware.
type AuthConfig struct {
	// Validator validates a token string and returns the claims.
	Validator auth.TokenValidator
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns a Gin middleware that validates Bearer tokens. Missing or
// invalid tokens abort with an UnauthorizedError; validated claims are
// stored on both the gin context and the request context.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		claims, err := auth.Authenticate(cfg.Validator, c.GetHeader("Authorization"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Next()
	}
}

// RequirePermission aborts with an UnauthorizedError when the request
// carries no claims, and with a ForbiddenError when none of the claims'
// subjects holds required.
func RequirePermission(checker permission.Checker, required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.Get(ClaimsKey)
		if !ok {
			AbortWithError(c, errors.Unauthorized())
			return
		}
		var subjects []string
		if s, ok := claims.(auth.Subject); ok {
			subjects = s.Subjects()
		}
		if err := permission.Require(checker, subjects, required); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}
