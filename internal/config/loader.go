package config

import (
	"fmt"
	"os"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadFromEnvironment overrides config values from environment variables
func (c *Config) LoadFromEnvironment() error {
	c.Server.Addr = getEnvString("TASKD_ADDR", c.Server.Addr)

	requestTimeout, err := getEnvDuration("TASKD_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	if err != nil {
		return err
	}
	c.Server.RequestTimeout = requestTimeout

	shutdownTimeout, err := getEnvDuration("TASKD_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	if err != nil {
		return err
	}
	c.Server.ShutdownTimeout = shutdownTimeout

	c.Database.Driver = Driver(getEnvString("TASKD_DB_DRIVER", string(c.Database.Driver)))
	c.Database.Path = getEnvString("TASKD_DB_PATH", c.Database.Path)
	c.Database.DSN = getEnvString("TASKD_DB_DSN", c.Database.DSN)

	return nil
}

func getEnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return parsed, nil
}
