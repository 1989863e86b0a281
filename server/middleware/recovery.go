package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/logger"
)

// Recovery returns a Gin middleware that recovers from panics and dispatches
// the panic value. A raised ServiceError keeps its status; anything else
// becomes the generic 500. opts.HideDetails applies even without
// ErrorHandler. Install it inside ErrorHandler so the dispatch is logged once.
func Recovery(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		hideDetails(c, opts)
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}
			opts.log().WithContext(c.Request.Context()).Error("Panic recovered", map[string]interface{}{
				"panic":  fmt.Sprintf("%v", r),
				"stack":  string(debug.Stack()),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			AbortWithError(c, panicValue(r))
		}()
		c.Next()
	}
}

// HTTPRecovery is Recovery for plain net/http handlers. It also reports the
// dispatched error, since no ErrorHandler runs outside Gin.
func HTTPRecovery(opts Options) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				resp := errors.Dispatch(panicValue(v))
				fields := logger.ServiceErrorFields(resp)
				fields["panic"] = fmt.Sprintf("%v", v)
				fields["stack"] = string(debug.Stack())
				fields[logger.FieldPath] = r.URL.Path
				fields[logger.FieldMethod] = r.Method
				opts.log().WithContext(r.Context()).Error("Panic recovered", fields)
				opts.Metrics.RecordServiceError(r.Context(), resp)

				if sw.wroteHeader {
					return
				}
				if opts.HideDetails {
					resp = resp.WithoutDetails()
				}
				WriteResponse(sw, resp)
			}()
			next.ServeHTTP(sw, r)
		})
	}
}

// panicValue keeps errors as they are so a panicking ServiceError is still
// recognized; other values become a descriptive error.
func panicValue(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}
