package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
)

func TestInitDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown, err := Init(context.Background(), config.TelemetryConfig{ServiceName: "portfolio"}, logger)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitEnabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown, err := Init(context.Background(), config.TelemetryConfig{
		Endpoint:    "http://localhost:4318",
		ServiceName: "portfolio",
	}, logger)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
