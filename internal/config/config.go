// Package config provides environment-driven configuration for cinegraph.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cinegraph/cinegraph/internal/store"
)

// Config holds all application configuration values.
type Config struct {
	Port        string
	ListenHost  string
	DataDir     string
	CORSOrigins []string
	LogLevel    string
	Caps        store.Caps
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("PORT", "3030"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
		DataDir:    envOrDefault("DATA_DIR", "dataset"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
	}

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	caps, err := loadCaps()
	if err != nil {
		return nil, err
	}
	cfg.Caps = caps

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadCaps reads the per-source load cap overrides.
func loadCaps() (store.Caps, error) {
	caps := store.DefaultCaps()

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"MAX_TITLES", &caps.Titles},
		{"MAX_PEOPLE", &caps.People},
		{"MAX_PRINCIPALS", &caps.Principals},
		{"MAX_CREWS", &caps.Crews},
		{"MAX_RATINGS", &caps.Ratings},
	} {
		raw, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return caps, fmt.Errorf("%s must be a positive integer", v.name)
		}

		*v.dst = n
	}

	return caps, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// envOrDefault returns the environment variable value or a fallback.
func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
