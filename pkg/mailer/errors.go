package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no from address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// ProviderError is returned by a Sender when the provider answered the
// request with a non-success status. Transport failures are never reported
// as ProviderError.
type ProviderError struct {
	Err        error  // Underlying SDK error
	Message    string // Message from the provider's error body, empty if none could be parsed
	StatusCode int    // HTTP status returned by the provider
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider responded %d", e.StatusCode)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts the ProviderError from an error chain if present.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
