package mailer

// Defaults applied by the env tags on Config.
const (
	DefaultFallbackSubject = "Portfolio Contact Form: {{.Name}}"
	DefaultLayout          = "contact.html"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// FallbackSubject is used when neither SendParams nor the template's front
	// matter sets a subject. It is executed as a template against the send data.
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Portfolio Contact Form: {{.Name}}"`
	// DefaultLayout wraps templates sent without an explicit layout.
	DefaultLayout string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"contact.html"`
}
