package handlers

import (
	"net/http"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/middlewares"
	"github.com/jpmayor1/portfolio/pkg/logger"
)

// Client-facing messages for framework errors.
const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgTimeout          = "Request timed out"
	msgInternal         = "An unexpected error occurred"
)

// ErrorHandler renders every error as {"error": "..."}. HTTPError messages are
// shown as-is; panics, timeouts and other errors get a generic message and are
// logged with their cause.
func ErrorHandler(c internal.Context, err error) error {
	status := middlewares.StatusForError(err)

	if he, ok := internal.AsHTTPError(err); ok {
		if status >= http.StatusInternalServerError {
			c.LogError("request failed", logger.Error(err))
		}
		return c.JSON(status, errorResponse{Error: he.Error()})
	}

	message := msgInternal
	if middlewares.IsTimeout(err) {
		message = msgTimeout
	} else if _, ok := middlewares.AsPanicError(err); !ok {
		c.LogError("unhandled error", logger.Error(err))
	}

	return c.JSON(status, errorResponse{Error: message})
}

// NotFound answers unknown routes.
func NotFound(internal.Context) error {
	return internal.ErrNotFound(msgNotFound)
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(internal.Context) error {
	return internal.ErrMethodNotAllowed(msgMethodNotAllowed)
}
