package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpmayor1/portfolio/pkg/logger"
	"github.com/jpmayor1/portfolio/pkg/mailer"
)

// Relay forwards validated submissions to the mail provider.
// A Relay holds no per-call state and is safe for concurrent use.
type Relay struct {
	mailer *mailer.Mailer
	logger *slog.Logger
	config Config
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger used for failed sends.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRelay creates a relay that sends through m. Empty addresses in cfg fall
// back to DefaultFromEmail and DefaultToEmail.
func NewRelay(m *mailer.Mailer, cfg Config, opts ...Option) *Relay {
	r := &Relay{
		mailer: m,
		config: cfg.withDefaults(),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit validates s and, if valid, sends one notification.
// The provider call is detached from ctx cancellation so a client hanging up
// does not abort a send already in flight; the sender's own timeout bounds it.
func (r *Relay) Submit(ctx context.Context, s Submission) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "contact relay panicked", slog.Any("panic", rec))
			out = transportFailure(fmt.Errorf("%v", rec))
		}
	}()

	if err := Validate(s); err != nil {
		ve, _ := AsValidationError(err)
		return rejected(ve)
	}

	receipt, err := r.mailer.Send(context.WithoutCancel(ctx), mailer.SendParams{
		To:       r.config.ToEmail,
		From:     mailer.Recipient(r.config.FromName, r.config.FromEmail),
		ReplyTo:  s.Email,
		Template: TemplateName,
		Layout:   LayoutName,
		Data:     s,
		HTMLOnly: true,
	})
	if err != nil {
		if pe, ok := mailer.AsProviderError(err); ok {
			r.logger.WarnContext(ctx, "mail provider rejected contact submission",
				slog.Int("status", pe.StatusCode),
				slog.String("provider_message", pe.Message),
			)
			return providerFailure(pe.StatusCode, pe.Message)
		}
		r.logger.ErrorContext(ctx, "contact submission not delivered", logger.Error(err))
		return transportFailure(err)
	}

	r.logger.InfoContext(ctx, "contact submission delivered", slog.String("provider_id", receipt.ID))
	return accepted(receipt.ID)
}
