package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, "https://github.com", cfg.GitHub.WebURL)
	assert.Equal(t, "templates/*", cfg.Site.TemplatesGlob)
	assert.Equal(t, 420, cfg.Site.ScrollThreshold)
	assert.Equal(t, 0.15, cfg.Site.RevealRatio)
	assert.Equal(t, 8760*time.Hour, cfg.Admin.EventRetention)
	assert.False(t, cfg.Admin.Enabled())
	assert.Equal(t, "portfolio", cfg.OTel.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_GITHUB_USER", "ghost-user")
	t.Setenv("GITHUB_API_URL", "http://localhost:9999")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://otel.example.com:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ghost-user", cfg.GitHub.User)
	assert.Equal(t, "http://localhost:9999", cfg.GitHub.APIURL)
	assert.True(t, cfg.Admin.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://otel.example.com:4318", cfg.OTel.Endpoint)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"relative api url", "GITHUB_API_URL", "api.github.com"},
		{"ratio above one", "REVEAL_RATIO", "1.5"},
		{"negative threshold", "SCROLL_THRESHOLD", "-1"},
		{"bad level", "LOG_LEVEL", "loud"},
		{"bad retention", "EVENT_RETENTION", "forever"},
		{"bad gin mode", "GIN_MODE", "turbo"},
		{"otlp endpoint without scheme", "OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
