// Package middlewares holds the HTTP middleware chain of the portfolio API.
//
// Recommended order, outermost first:
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger("/health/live", "/health/ready"),
//	    middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)),
//	    middlewares.Recover(),
//	    middlewares.Timeout(cfg.RequestTimeout),
//	)
//
// Recover and Timeout do not write responses. They return *PanicError and
// *TimeoutError, which the app's ErrorHandler renders.
package middlewares
