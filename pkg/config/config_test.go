package config

import (
	"testing"
	"time"

	"station-reassignment-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_HTTPDefaults(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "")
	t.Setenv("REMOTE_API_URL", "https://hr.example.com/api")
	t.Setenv("PACING_MODE", "")
	t.Setenv("PACING_INTERVAL", "")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, GatewayHTTP, cfg.GatewayMode)
	assert.Equal(t, "https://hr.example.com/api", cfg.Remote.BaseURL)
	assert.Equal(t, "station-reassignment-service", cfg.Remote.TokenSubject)
	assert.Equal(t, "fixed", cfg.Pacing.Mode)
	assert.Equal(t, 300*time.Millisecond, cfg.Pacing.Interval)
	assert.Equal(t, 1, cfg.Pacing.Burst)
	assert.Empty(t, cfg.PostgresHost)
}

func TestLoad_HTTPRequiresRemoteURL(t *testing.T) {
	t.Setenv("GATEWAY_MODE", GatewayHTTP)
	t.Setenv("REMOTE_API_URL", "")

	_, err := Load("testdata/missing.env")
	assert.ErrorContains(t, err, "REMOTE_API_URL is required")
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("GATEWAY_MODE", GatewayPostgres)
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "reassign")
	t.Setenv("PACING_MODE", "token-bucket")
	t.Setenv("PACING_INTERVAL", "1s")
	t.Setenv("PACING_BURST", "4")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=reassign sslmode=disable", cfg.DSN())
	assert.Equal(t, PacingConfig{Mode: "token-bucket", Interval: time.Second, Burst: 4}, cfg.Pacing)
}

func TestLoad_PostgresMissingHost(t *testing.T) {
	t.Setenv("GATEWAY_MODE", GatewayPostgres)
	t.Setenv("POSTGRES_HOST", "")

	_, err := Load("testdata/missing.env")
	assert.ErrorContains(t, err, "POSTGRES_HOST is required")
}

func TestLoad_UnknownGateway(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "kafka")

	_, err := Load("testdata/missing.env")
	assert.ErrorIs(t, err, my_errors.ErrUnknownGateway)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_TIMEOUT", time.Second))
}

func TestLoadClient(t *testing.T) {
	t.Setenv("REMOTE_API_URL", "http://localhost:9000")
	t.Setenv("REMOTE_API_TOKEN", "tok")
	t.Setenv("PACING_MODE", "none")

	remote, pacing, err := LoadClient("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, "tok", remote.Token)
	assert.Equal(t, "none", pacing.Mode)
}
