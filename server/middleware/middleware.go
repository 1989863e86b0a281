package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/logger"
	"github.com/kbukum/svcerrors/observability"
)

// Middleware wraps an http.Handler with additional behavior. It applies at
// the server handler level, around Gin and any other mounted handler.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// Options configures how dispatched errors are reported and rendered.
type Options struct {
	// Logger receives one entry per dispatched error; nil uses the global logger.
	Logger *logger.Logger
	// Metrics counts dispatched errors; nil disables counting.
	Metrics *observability.Metrics
	// HideDetails strips Record details from client responses.
	HideDetails bool
}

func (o Options) log() *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.GetGlobalLogger()
}

const hideDetailsKey = "svcerrors.hide_details"

// hideDetails marks c when opts asks for redaction. It never clears a mark
// set by an outer middleware.
func hideDetails(c *gin.Context, opts Options) {
	if opts.HideDetails {
		c.Set(hideDetailsKey, true)
	}
}

// DetailsHidden reports whether responses written for c must omit details.
func DetailsHidden(c *gin.Context) bool {
	return c.GetBool(hideDetailsKey)
}

// AbortWithError dispatches v, attaches the error to c for ErrorHandler and
// writes the response unless one was already written.
func AbortWithError(c *gin.Context, v any) errors.Response {
	resp := errors.Dispatch(v)
	_ = c.Error(attachable(v, resp))
	c.Abort()
	if !c.Writer.Written() {
		if DetailsHidden(c) {
			c.JSON(resp.Status, resp.WithoutDetails().Body)
		} else {
			c.JSON(resp.Status, resp.Body)
		}
	}
	return resp
}

// attachable picks the error to record on the gin context: the raised error
// itself when there is one, so its full chain reaches the log.
func attachable(v any, resp errors.Response) error {
	if err, ok := v.(error); ok && err != nil {
		return err
	}
	return resp.Err
}

// WriteResponse encodes a dispatched response on a plain ResponseWriter.
func WriteResponse(w http.ResponseWriter, resp errors.Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp.Body)
}

// report logs a dispatched error and records it on the active span and
// metrics. 5xx responses log at error level with their cause, the rest at
// warn.
func report(c *gin.Context, opts Options, raised error, resp errors.Response) {
	fields := logger.ServiceErrorFields(resp)
	fields[logger.FieldMethod] = c.Request.Method
	fields[logger.FieldPath] = c.FullPath()
	if fields[logger.FieldPath] == "" {
		fields[logger.FieldPath] = c.Request.URL.Path
	}
	if raised != nil {
		fields[logger.FieldError] = raised.Error()
	}

	log := opts.log().WithContext(c.Request.Context())
	if resp.Status >= http.StatusInternalServerError {
		log.Error("Request failed", fields)
	} else {
		log.Warn("Request rejected", fields)
	}

	ctx := c.Request.Context()
	observability.RecordDispatch(ctx, resp)
	opts.Metrics.RecordServiceError(ctx, resp)
}
