// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jpmayor1/portfolio/pkg/contact"
	"github.com/jpmayor1/portfolio/pkg/logger"
	"github.com/jpmayor1/portfolio/pkg/mailer"
	"github.com/jpmayor1/portfolio/pkg/mailer/resend"
)

// Config is the complete service configuration.
type Config struct {
	Resend  resend.Config
	Contact contact.Config
	Mailer  mailer.Config
	Log     logger.Config

	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ContactPath     string        `env:"CONTACT_PATH" envDefault:"/api/contact"`
	TemplateDir     string        `env:"CONTACT_TEMPLATE_DIR"`
	SiteDir         string        `env:"SITE_DIR"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the optional dotenv files, then parses the environment.
// Variables already set in the environment win over dotenv values.
// A missing dotenv file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
