package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadServerConfig
const (
	EnvAddr                 = "SALARYCALC_ADDR"
	EnvGinMode              = "GIN_MODE"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogJSON              = "LOG_JSON"
	EnvRulesFile            = "SALARYCALC_RULES"
	EnvCORSAllowedOrigins   = "CORS_ALLOWED_ORIGINS"
	EnvCORSAllowedMethods   = "CORS_ALLOWED_METHODS"
	EnvCORSAllowedHeaders   = "CORS_ALLOWED_HEADERS"
	EnvCORSAllowCredentials = "CORS_ALLOW_CREDENTIALS"
	EnvShutdownTimeout      = "SHUTDOWN_TIMEOUT"
)

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Addr             string
	GinMode          string
	LogLevel         string
	LogJSON          bool
	RulesFile        string
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	ShutdownTimeout  time.Duration
}

// DefaultServerConfig returns the settings used when no environment is set
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		GinMode:         "release",
		LogLevel:        "info",
		AllowedOrigins:  []string{"http://localhost:3000"},
		AllowedMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadServerConfig loads .env files (missing files are ignored) and then reads the environment.
// Variables already set in the process environment win over the files.
func LoadServerConfig(envFiles ...string) (*ServerConfig, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := DefaultServerConfig()
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvGinMode); v != "" {
		cfg.GinMode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogJSON = os.Getenv(EnvLogJSON) == "true"
	cfg.RulesFile = os.Getenv(EnvRulesFile)
	if v := splitList(os.Getenv(EnvCORSAllowedOrigins)); len(v) > 0 {
		cfg.AllowedOrigins = v
	}
	if v := splitList(os.Getenv(EnvCORSAllowedMethods)); len(v) > 0 {
		cfg.AllowedMethods = v
	}
	if v := splitList(os.Getenv(EnvCORSAllowedHeaders)); len(v) > 0 {
		cfg.AllowedHeaders = v
	}
	cfg.AllowCredentials = os.Getenv(EnvCORSAllowCredentials) == "true"
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the server settings
func (c *ServerConfig) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("server address is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q (want debug, release or test)", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			if c.AllowCredentials {
				return fmt.Errorf("wildcard origin cannot be combined with credentials")
			}
			continue
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", o)
		}
		if strings.Count(o, "*") > 1 {
			return fmt.Errorf("invalid CORS origin %q: only one * is allowed", o)
		}
	}
	return nil
}

// splitList splits a comma separated value and trims each entry
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
