package resend

import "errors"

var (
	// ErrAPIKeyNotConfigured is reported by the healthcheck while the API key
	// is empty or still the placeholder.
	ErrAPIKeyNotConfigured = errors.New("resend: api key not configured")

	// ErrInvalidBaseURL indicates RESEND_BASE_URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("resend: invalid base url")
)
