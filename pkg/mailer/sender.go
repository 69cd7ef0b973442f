package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message with a single provider call.
	// The Email must have From, To, Subject, and HTML already set.
	// A rejection by the provider is reported as *ProviderError; any other
	// error means the provider could not be reached or understood.
	Send(ctx context.Context, email *Email) (*Receipt, error)
}
