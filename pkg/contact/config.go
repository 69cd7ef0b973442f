package contact

// Config holds the relay's routing of notifications.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromEmail string `env:"RESEND_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	FromName  string `env:"RESEND_FROM_NAME"`
	ToEmail   string `env:"RESEND_TO_EMAIL" envDefault:"contact@jamesphillipmayor.com"`
}

const (
	DefaultFromEmail = "onboarding@resend.dev"
	DefaultToEmail   = "contact@jamesphillipmayor.com"
)

func (c Config) withDefaults() Config {
	if c.FromEmail == "" {
		c.FromEmail = DefaultFromEmail
	}
	if c.ToEmail == "" {
		c.ToEmail = DefaultToEmail
	}
	return c
}
