package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Sentry SentryConfig
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// New creates a JSON logger on stdout. Records at or above cfg.Sentry.MinLevel
// are also forwarded to Sentry when cfg.Sentry.DSN is set.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newLogger(os.Stdout, cfg, extractors...)
}

func newLogger(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})

	var handler slog.Handler = stdout
	if sentryHandler, ok := newSentryHandler(cfg.Sentry, stdout); ok {
		handler = newMultiHandler(stdout, sentryHandler)
	}

	return slog.New(WithExtractors(handler, extractors...))
}

// Error returns an attribute carrying err's message under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
