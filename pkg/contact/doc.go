// Package contact relays portfolio contact-form submissions to the mail provider.
//
// It has two halves. Validate is a pure check of a Submission and performs no
// I/O. Relay.Submit validates, renders the notification through pkg/mailer,
// makes exactly one provider call and reports the result as an Outcome.
//
// # Outcomes
//
// Every call to Submit yields exactly one Outcome:
//
//	StatusOK              200, provider accepted the message, ProviderID is set
//	StatusValidationError 400, submission rejected before any network call
//	StatusProviderError   provider status (500 if none), provider's message or a generic fallback
//	StatusTransportError  500, network, render or decode failure
//
// There is no retry; callers decide whether to resubmit.
//
// # Usage
//
//	sender, _ := resend.New(cfg.Resend)
//	renderer := mailer.NewRenderer(contact.TemplateFS(cfg.TemplateDir))
//	relay := contact.NewRelay(mailer.New(sender, renderer, cfg.Mailer), cfg.Contact,
//		contact.WithLogger(log),
//	)
//
//	out := relay.Submit(ctx, contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
//	if out.Status != contact.StatusOK {
//		// out.StatusCode and out.Message describe the failure
//	}
//
// # Templates
//
// The notification is rendered from an embedded markdown template (contact.md)
// and HTML layout (layouts/contact.html). Submitted fields reach the layout as
// .Data and are escaped by html/template; the message keeps its line breaks
// inside a pre-wrap paragraph. TemplateFS returns a directory on disk instead
// when one is given, so deployments can restyle the notification.
package contact
