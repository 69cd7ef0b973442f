package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/jpmayor1/portfolio/pkg/health"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware, applied in the order given.
// Global middleware also wraps the not-found and method-not-allowed handlers.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles serves fsys at pattern. A directory is served through its
// index.html; directories without one are never listed. Missing files go to
// the not-found handler, so they answer like any other unknown route.
//
// Example:
//
//	internal.WithStaticFiles("/", os.DirFS(cfg.SiteDir))
func WithStaticFiles(pattern string, fsys fs.FS) Option {
	return func(a *App) {
		prefix := strings.TrimSuffix(pattern, "/")
		fileServer := http.StripPrefix(prefix, http.FileServerFS(fsys))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, prefix), "/")
			if !staticExists(fsys, name) {
				a.notFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler: handler, pattern: pattern})
	}
}

// staticExists reports whether name resolves to a file in fsys. Directory
// requests (empty or trailing slash) need an index.html.
func staticExists(fsys fs.FS, name string) bool {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		clean = "."
	}
	if name == "" || strings.HasSuffix(name, "/") {
		clean = path.Join(clean, "index.html")
	}
	_, err := fs.Stat(fsys, clean)
	return err == nil
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets the 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables the liveness and readiness probes.
//
// Example:
//
//	internal.WithHealthChecks(
//	    internal.WithReadinessCheck("mail_provider", resend.Healthcheck(sender)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(map[string]health.CheckFunc),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger sets the logger handed to every request context.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithBodyLimit overrides DefaultBodyLimit for BindJSON.
func WithBodyLimit(n int64) Option {
	return func(a *App) {
		if n > 0 {
			a.bodyLimit = n
		}
	}
}
