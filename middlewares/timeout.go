package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/jpmayor1/portfolio/internal"
)

// DefaultTimeout is the request timeout used when none is given.
const DefaultTimeout = 15 * time.Second

// Timeout puts a deadline on the request context. When the handler returns
// after the deadline passed without writing a response, the result is a
// *TimeoutError for the app's ErrorHandler.
//
// Handlers run on the request goroutine; they must watch ctx.Done() to stop
// early. Work deliberately detached from the request context is not cut short.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
