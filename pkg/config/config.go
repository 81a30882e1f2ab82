package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"station-reassignment-service/internal/my_errors"

	"github.com/joho/godotenv"
)

const (
	GatewayHTTP     = "http"
	GatewayPostgres = "postgres"
)

type Config struct {
	Port        string
	GatewayMode string

	Remote RemoteConfig
	Pacing PacingConfig

	BatchTimeout   time.Duration
	RequestTimeout time.Duration

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPass     string
	PostgresDatabase string
	PostgresSSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

type RemoteConfig struct {
	BaseURL      string
	Token        string
	TokenSecret  string
	TokenSubject string
	Timeout      time.Duration
}

type PacingConfig struct {
	Mode     string
	Interval time.Duration
	Burst    int
}

func Load(envFiles ...string) (*Config, error) {
	loadEnvFiles(envFiles)

	maxConns, _ := strconv.Atoi(getEnvWithDefault("DB_MAX_CONNS", "10"))
	minConns, _ := strconv.Atoi(getEnvWithDefault("DB_MIN_CONNS", "1"))

	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		GatewayMode:       getEnvWithDefault("GATEWAY_MODE", GatewayHTTP),
		Pacing:            loadPacing(),
		BatchTimeout:      getEnvAsDuration("BATCH_TIMEOUT", 10*time.Minute),
		RequestTimeout:    getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
		PostgresSSLMode:   getEnvWithDefault("POSTGRES_SSL_MODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime:   getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		HealthCheckPeriod: getEnvAsDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
	}

	switch cfg.GatewayMode {
	case GatewayHTTP:
		remote, err := loadRemote()
		if err != nil {
			return nil, err
		}
		cfg.Remote = remote
	case GatewayPostgres:
		if err := loadPostgres(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("GATEWAY_MODE %q: %w", cfg.GatewayMode, my_errors.ErrUnknownGateway)
	}

	slog.Info("configuration loaded",
		"port", cfg.Port,
		"gateway_mode", cfg.GatewayMode,
		"pacing_mode", cfg.Pacing.Mode,
		"pacing_interval", cfg.Pacing.Interval,
	)

	return cfg, nil
}

// LoadClient loads only what a remote client needs: the HTTP gateway and pacing.
func LoadClient(envFiles ...string) (RemoteConfig, PacingConfig, error) {
	loadEnvFiles(envFiles)

	remote, err := loadRemote()
	if err != nil {
		return RemoteConfig{}, PacingConfig{}, err
	}
	return remote, loadPacing(), nil
}

func loadEnvFiles(envFiles []string) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Debug("env file not found, using system environment variables")
		}
	}
}

func loadRemote() (RemoteConfig, error) {
	baseURL, err := getEnvRequired("REMOTE_API_URL")
	if err != nil {
		return RemoteConfig{}, err
	}
	return RemoteConfig{
		BaseURL:      baseURL,
		Token:        os.Getenv("REMOTE_API_TOKEN"),
		TokenSecret:  os.Getenv("SERVICE_TOKEN_SECRET"),
		TokenSubject: getEnvWithDefault("SERVICE_TOKEN_SUBJECT", "station-reassignment-service"),
		Timeout:      getEnvAsDuration("REMOTE_TIMEOUT", 10*time.Second),
	}, nil
}

func loadPacing() PacingConfig {
	burst, err := strconv.Atoi(getEnvWithDefault("PACING_BURST", "1"))
	if err != nil || burst < 1 {
		burst = 1
	}
	return PacingConfig{
		Mode:     getEnvWithDefault("PACING_MODE", "fixed"),
		Interval: getEnvAsDuration("PACING_INTERVAL", 300*time.Millisecond),
		Burst:    burst,
	}
}

func loadPostgres(cfg *Config) error {
	var err error
	if cfg.PostgresHost, err = getEnvRequired("POSTGRES_HOST"); err != nil {
		return err
	}
	if cfg.PostgresPort, err = getEnvRequired("POSTGRES_PORT"); err != nil {
		return err
	}
	if cfg.PostgresUser, err = getEnvRequired("POSTGRES_USER"); err != nil {
		return err
	}
	if cfg.PostgresPass, err = getEnvRequired("POSTGRES_PASSWORD"); err != nil {
		return err
	}
	if cfg.PostgresDatabase, err = getEnvRequired("POSTGRES_DB"); err != nil {
		return err
	}
	return nil
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// for required variables
func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", valueStr)
		return defaultValue
	}

	return duration
}
