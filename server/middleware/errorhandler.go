package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/svcerrors/errors"
)

// ErrorHandler returns a Gin middleware that turns the last error attached
// with c.Error into exactly one JSON error response. It logs and records
// every dispatched error; when a handler already wrote a response (for
// example through AbortWithError) it only reports.
func ErrorHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		hideDetails(c, opts)
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		resp := errors.Dispatch(last.Err)
		report(c, opts, last.Err, resp)

		if c.Writer.Written() {
			return
		}
		if DetailsHidden(c) {
			resp = resp.WithoutDetails()
		}
		c.AbortWithStatusJSON(resp.Status, resp.Body)
	}
}
