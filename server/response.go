package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/server/middleware"
)

// RespondWithError dispatches v (any raised value) and writes exactly one
// JSON error response, aborting the handler chain. The error is also
// attached to c so ErrorHandler logs it.
func RespondWithError(c *gin.Context, v any) {
	middleware.AbortWithError(c, v)
}

// WriteError is RespondWithError for plain net/http handlers.
func WriteError(w http.ResponseWriter, v any) {
	middleware.WriteResponse(w, errors.Dispatch(v))
}

// RespondOK sends a 200 response with data as the body.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 response with data as the body.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
