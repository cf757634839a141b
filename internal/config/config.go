// Package config resolves server configuration from the environment. The
// listening port is the only external knob; everything else is fixed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is unset.
const DefaultPort = 4000

// Fixed HTTP server timeouts.
const (
	ReadTimeout  = 60 * time.Second
	WriteTimeout = 60 * time.Second
	IdleTimeout  = 120 * time.Second
)

// Config holds the resolved server settings.
type Config struct {
	Port int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := &Config{Port: DefaultPort}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
