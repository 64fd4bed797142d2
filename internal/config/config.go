package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrDatabaseURLRequired is returned by Load when DATABASE_URL is unset.
var ErrDatabaseURLRequired = errors.New("DATABASE_URL must be set")

// Config holds all application configuration.
type Config struct {
	ServerPort  string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	// DatabaseCACert is a path to a PEM bundle used to verify the database
	// server certificate. Empty means the URL's own TLS settings apply.
	DatabaseCACert string
	MaxDBConns     int32
	// AllowedOrigins is the fixed CORS allow-list.
	AllowedOrigins     []string
	DefaultTopK        int
	RecommendRateLimit int
	SwaggerEnabled     bool
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabaseCACert: strings.TrimSpace(os.Getenv("DATABASE_CA_CERT")),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, errors.New("ALLOWED_ORIGINS must list at least one origin")
	}

	maxConns, err := getEnvInt("MAX_DB_CONNS", 10)
	if err != nil {
		return nil, err
	}
	if maxConns < 1 {
		return nil, fmt.Errorf("MAX_DB_CONNS must be positive, got %d", maxConns)
	}
	cfg.MaxDBConns = int32(maxConns)

	if cfg.DefaultTopK, err = getEnvInt("RECOMMEND_DEFAULT_TOP_K", 3); err != nil {
		return nil, err
	}
	if cfg.DefaultTopK < 1 {
		return nil, fmt.Errorf("RECOMMEND_DEFAULT_TOP_K must be positive, got %d", cfg.DefaultTopK)
	}
	if cfg.RecommendRateLimit, err = getEnvInt("RECOMMEND_RATE_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.SwaggerEnabled, err = getEnvBool("SWAGGER_ENABLED", true); err != nil {
		return nil, err
	}

	if cfg.DatabaseCACert != "" {
		if _, err := os.Stat(cfg.DatabaseCACert); err != nil {
			return nil, fmt.Errorf("DATABASE_CA_CERT: %w", err)
		}
	}

	return cfg, nil
}

// DatabaseDSN returns the connection string with the CA bundle applied.
// Both pgx and the migration driver understand sslrootcert, so the same
// string serves the pool and schema migrations.
func (c *Config) DatabaseDSN() (string, error) {
	if c.DatabaseCACert == "" {
		return c.DatabaseURL, nil
	}

	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse database URL: %w", err)
	}
	q := u.Query()
	q.Set("sslrootcert", c.DatabaseCACert)
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "verify-full")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
