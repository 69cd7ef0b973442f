// Package mailer provides a provider-neutral email sending interface with
// template rendering.
//
// The package separates delivery (a [Sender] implemented per provider) from
// rendering (a [Renderer] for markdown templates with YAML front matter), and
// joins them in [Mailer].
//
// # Usage
//
//	sender, err := resend.New(cfg.Resend)
//	if err != nil {
//		return err
//	}
//	renderer := mailer.NewRenderer(os.DirFS("templates"))
//	m := mailer.New(sender, renderer, cfg.Mailer)
//
//	receipt, err := m.Send(ctx, mailer.SendParams{
//		From:     "site@example.com",
//		To:       "inbox@example.com",
//		Template: "contact.md",
//		Data:     submission,
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML front matter:
//
//	---
//	Subject: "Portfolio Contact Form: {{.Name}}"
//	---
//	## New Contact Form Submission
//
// The body and the Subject are executed with text/template, so markdown
// templates must only interpolate trusted values. Layouts are html/template
// files receiving .Content (rendered markdown), .Metadata and .Data; values
// read from .Data are HTML-escaped, which is where user input belongs.
//
// # Errors
//
// Senders report provider rejections as [*ProviderError] carrying the HTTP
// status and the provider's message. Every other failure is a plain error.
// [Mailer.Send] wraps sender failures with [ErrSendFailed]; use
// [AsProviderError] to tell the two apart.
package mailer
