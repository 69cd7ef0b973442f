package resend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/jpmayor1/portfolio/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
// Each Send performs exactly one HTTP call; there is no retry.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender. Empty config fields fall back to
// PlaceholderAPIKey, DefaultBaseURL and DefaultTimeout.
func New(cfg Config) (*Sender, error) {
	cfg.APIKey = strings.Trim(strings.TrimSpace(cfg.APIKey), "'")
	if cfg.APIKey == "" {
		cfg.APIKey = PlaceholderAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	// The SDK resolves "emails" relative to the base, so it must end in a slash.
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &recordingTransport{next: http.DefaultTransport},
	}

	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	client.BaseURL = base

	return &Sender{
		client: client,
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	if email.From == "" {
		return nil, mailer.ErrNoSender
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	ex := &exchange{}
	resp, err := s.client.Emails.SendWithContext(withExchange(ctx, ex), req)
	if err != nil {
		if ex.rejected() {
			return nil, &mailer.ProviderError{
				StatusCode: ex.status,
				Message:    errorMessage(ex.body),
				Err:        err,
			}
		}
		return nil, fmt.Errorf("resend: %w", err)
	}

	return &mailer.Receipt{ID: resp.Id}, nil
}

// Configured reports whether a real API key is set.
func (s *Sender) Configured() bool {
	return s.config.APIKey != "" && s.config.APIKey != PlaceholderAPIKey
}

// Healthcheck returns a readiness check that fails while the sender runs
// on the placeholder credential.
func Healthcheck(s *Sender) func(context.Context) error {
	return func(context.Context) error {
		if !s.Configured() {
			return ErrAPIKeyNotConfigured
		}
		return nil
	}
}

// errorMessage extracts the "message" field from a Resend error body.
// Returns "" when the body is not JSON or carries no message.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
