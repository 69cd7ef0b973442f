package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jpmayor1/portfolio/internal"
)

// RequestLogger logs one line per request once the rest of the chain is done.
// 5xx responses log at error, 4xx at warn, everything else at info.
// Paths in skip (health probes, typically) are not logged.
func RequestLogger(skip ...string) internal.Middleware {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			req := c.Request()
			if _, ok := skipped[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status()
			if err != nil && !c.Written() {
				// The error handler writes the response later; report what it will send.
				status = StatusForError(err)
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", c.Response().Size()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", req.RemoteAddr),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			c.Logger().Log(c.Context(), level, "http request", attrs...)
			return err
		}
	}
}

// StatusForError maps an error returned through the middleware chain to the
// status the error handler answers with: 504 for timeouts, the HTTPError's
// own status, 500 for anything else.
func StatusForError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if IsTimeout(err) {
		return http.StatusGatewayTimeout
	}
	if he, ok := internal.AsHTTPError(err); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}
