// Package logger builds the service's structured slog logger.
//
// Records are written as JSON to stdout. Context extractors add request-scoped
// attributes such as the request ID to every record logged with a context:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact submission delivered", slog.String("provider_id", id))
//	// {"level":"INFO","msg":"contact submission delivered","provider_id":"...","request_id":"..."}
//
// When SENTRY_DSN is set, records at or above SENTRY_MIN_LEVEL are also sent to
// Sentry, and errors become Sentry issues. Without a DSN, or if the SDK fails to
// start, logging continues on stdout only. Call Flush before exit so buffered
// events are delivered.
//
// NewNope returns a logger that discards everything; packages use it as their
// default so a logger is never nil.
package logger
