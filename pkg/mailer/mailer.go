package mailer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	texttemplate "text/template"
)

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	Data     any    // Template data, also exposed to the layout as .Data
	To       string // Single recipient
	From     string // Sender identity
	Template string // Template filename (e.g., "contact.md")

	// Optional overrides
	Subject  string // Override template subject
	Layout   string // Override default layout
	ReplyTo  string // Reply-to address
	HTMLOnly bool   // Do not attach the plain text alternative
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) (*Receipt, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}
	if params.From == "" {
		return nil, ErrNoSender
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.HTML) == "" {
		return nil, ErrNoContent
	}

	subject := params.Subject
	if subject == "" {
		if subjectFromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = subjectFromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	// Process subject as template (supports {{.Variable}} syntax)
	processedSubject, err := m.processSubject(subject, params.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %w", ErrRenderFailed, err)
	}
	if processedSubject == "" {
		return nil, ErrNoSubject
	}

	email := &Email{
		To:      []string{params.To},
		From:    params.From,
		ReplyTo: params.ReplyTo,
		Subject: processedSubject,
		HTML:    result.HTML,
	}
	if !params.HTMLOnly {
		email.Text = result.Text
	}

	receipt, err := m.sender.Send(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	return receipt, nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
