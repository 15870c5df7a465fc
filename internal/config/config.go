// Package config reads the site's settings from the environment. A .env file
// in the working directory is loaded first by the main package.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the portfolio server.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// ProjectsPath points at a JSON, YAML or SQLite catalog. Empty means the
	// catalog embedded in the binary.
	ProjectsPath string `env:"PROJECTS_PATH"`

	CarouselInterval       time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"6s"`
	ContactConfirmationTTL time.Duration `env:"CONTACT_CONFIRMATION_TTL" envDefault:"5s"`
	PageIdleTTL            time.Duration `env:"PAGE_IDLE_TTL" envDefault:"30m"`
	PageSweepInterval      time.Duration `env:"PAGE_SWEEP_INTERVAL" envDefault:"1m"`
	// MaxPages bounds the mounted pages; the least recently seen one is
	// unmounted to make room.
	MaxPages int `env:"MAX_PAGES" envDefault:"1000"`

	Owner Owner
}

// Owner is who the portfolio belongs to.
type Owner struct {
	Name     string `env:"SITE_OWNER" envDefault:"Hamza Latif"`
	Initials string `env:"SITE_INITIALS" envDefault:"HL"`
	Email    string `env:"CONTACT_EMAIL" envDefault:"lhamza1020@gmail.com"`
	LinkedIn string `env:"LINKEDIN_URL" envDefault:"https://www.linkedin.com/in/latif-hamza/"`
	GitHub   string `env:"GITHUB_URL" envDefault:"https://github.com/HamzaLatif02"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.CarouselInterval)
	}
	if c.ContactConfirmationTTL <= 0 {
		return fmt.Errorf("CONTACT_CONFIRMATION_TTL must be positive, got %s", c.ContactConfirmationTTL)
	}
	if c.PageIdleTTL <= 0 || c.PageSweepInterval <= 0 {
		return fmt.Errorf("PAGE_IDLE_TTL and PAGE_SWEEP_INTERVAL must be positive")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("MAX_PAGES must be positive, got %d", c.MaxPages)
	}
	return nil
}
