// Command portfolio serves the portfolio site and relays contact form
// submissions to Resend.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/internal/config"
	"github.com/jpmayor1/portfolio/internal/handlers"
	"github.com/jpmayor1/portfolio/middlewares"
	"github.com/jpmayor1/portfolio/pkg/contact"
	"github.com/jpmayor1/portfolio/pkg/logger"
	"github.com/jpmayor1/portfolio/pkg/mailer"
	"github.com/jpmayor1/portfolio/pkg/mailer/resend"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	sender, err := resend.New(cfg.Resend)
	if err != nil {
		return err
	}
	if !sender.Configured() {
		log.Warn("RESEND_API_KEY is not set, contact submissions will be rejected by the provider")
	}

	templates := contact.TemplateFS(cfg.TemplateDir)
	relay := contact.NewRelay(
		mailer.New(sender, mailer.NewRenderer(templates), cfg.Mailer),
		cfg.Contact,
		contact.WithLogger(log),
	)

	opts := []internal.Option{
		internal.WithLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger("/health/live", "/health/ready"),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		internal.WithHandlers(handlers.NewContact(relay, cfg.ContactPath)),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("mail_provider", resend.Healthcheck(sender)),
		),
	}
	if cfg.SiteDir != "" {
		opts = append(opts, internal.WithStaticFiles("/", os.DirFS(cfg.SiteDir)))
	}

	app := internal.New(opts...)

	return app.Run(cfg.Address,
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.StartupHook(checkTemplates(templates)),
		internal.ShutdownHook(func(context.Context) error {
			logger.Flush(sentryFlushTimeout)
			return nil
		}),
	)
}

// checkTemplates fails startup when the notification templates are missing,
// which only happens with a bad CONTACT_TEMPLATE_DIR.
func checkTemplates(fsys fs.FS) func(context.Context) error {
	return func(context.Context) error {
		for _, name := range []string{contact.TemplateName, "layouts/" + contact.LayoutName} {
			if _, err := fs.Stat(fsys, name); err != nil {
				return fmt.Errorf("contact template %s: %w", name, err)
			}
		}
		return nil
	}
}
