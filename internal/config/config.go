// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	GitHub GitHubConfig
	Site   SiteConfig
	Admin  AdminConfig
	Log    LogConfig
	OTel   TelemetryConfig
}

type GitHubConfig struct {
	User   string `env:"PORTFOLIO_GITHUB_USER"`
	APIURL string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	WebURL string `env:"GITHUB_WEB_URL" envDefault:"https://github.com"`
}

type SiteConfig struct {
	TemplatesGlob   string  `env:"TEMPLATES_GLOB" envDefault:"templates/*"`
	StaticDir       string  `env:"STATIC_DIR" envDefault:"./static"`
	DBPath          string  `env:"DB_PATH" envDefault:"data/portfolio.db"`
	ScrollThreshold int     `env:"SCROLL_THRESHOLD" envDefault:"420"`
	RevealRatio     float64 `env:"REVEAL_RATIO" envDefault:"0.15"`
}

type AdminConfig struct {
	Username       string        `env:"ADMIN_USERNAME"`
	Password       string        `env:"ADMIN_PASSWORD"`
	EventRetention time.Duration `env:"EVENT_RETENTION" envDefault:"8760h"`
}

// Enabled reports whether admin routes should be mounted.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"portfolio"`
}

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
	for name, raw := range map[string]string{
		"GITHUB_API_URL": c.GitHub.APIURL,
		"GITHUB_WEB_URL": c.GitHub.WebURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q is not an absolute URL", name, raw)
		}
	}
	if c.OTel.Endpoint != "" {
		u, err := url.Parse(c.OTel.Endpoint)
		if err != nil {
			return fmt.Errorf("invalid OTEL_EXPORTER_OTLP_ENDPOINT: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid OTEL_EXPORTER_OTLP_ENDPOINT: %q is not an http(s) URL", c.OTel.Endpoint)
		}
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %q", c.GinMode)
	}
	if c.Site.ScrollThreshold < 0 {
		return errors.New("SCROLL_THRESHOLD must not be negative")
	}
	if c.Site.RevealRatio < 0 || c.Site.RevealRatio > 1 {
		return errors.New("REVEAL_RATIO must be between 0 and 1")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps LOG_LEVEL onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}
