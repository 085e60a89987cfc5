// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	NEOCSVPath  string
	CADJSONPath string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DefaultLimit caps query results when the caller asks for no explicit
	// limit and is not writing to a file. 0 disables the default cap.
	DefaultLimit int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	defaultLimit, err := parseDefaultLimit()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NEOCSVPath:      envOrDefault("NEO_CSV_PATH", "data/neos.csv"),
		CADJSONPath:     envOrDefault("CAD_JSON_PATH", "data/cad.json"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DefaultLimit:    defaultLimit,
	}

	if cfg.NEOCSVPath == "" {
		return nil, errors.New("NEO_CSV_PATH is required")
	}
	if cfg.CADJSONPath == "" {
		return nil, errors.New("CAD_JSON_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", s)
	}
	return d, nil
}

func parseDefaultLimit() (int, error) {
	s := envOrDefault("DEFAULT_LIMIT", "10")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid DEFAULT_LIMIT %q", s)
	}
	return n, nil
}
