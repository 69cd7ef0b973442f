package resend

import "time"

const (
	// PlaceholderAPIKey is used when no credential is configured. The provider
	// rejects it, which surfaces as a provider error rather than a crash.
	PlaceholderAPIKey = "YOUR_RESEND_API_KEY"

	// DefaultBaseURL is the Resend API root.
	DefaultBaseURL = "https://api.resend.com/"

	// DefaultTimeout bounds a single send call.
	DefaultTimeout = 10 * time.Second
)

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"RESEND_API_KEY" envDefault:"YOUR_RESEND_API_KEY"`
	BaseURL string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com/"`
	Timeout time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s"`
}
