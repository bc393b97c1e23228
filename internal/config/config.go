package config

import (
	"os"
	"strings"
	"time"

	"tasklist/internal/domain"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	// DefaultFile is read from the working directory when present.
	DefaultFile = "tasklist.toml"
	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

// Config holds all configuration options for the task list application
type Config struct {
	Display     DisplayConfig
	Store       StoreConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// DisplayConfig holds list rendering configuration
type DisplayConfig struct {
	DueLayout       string        `env:"TL_DUE_LAYOUT"`
	RefreshInterval time.Duration `env:"TL_REFRESH_INTERVAL"`
	DefaultSort     string        `env:"TL_DEFAULT_SORT"`
}

// StoreConfig selects the task store. Both drivers live only for the
// lifetime of the process.
type StoreConfig struct {
	Driver string `env:"TL_STORE_DRIVER"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `env:"TL_LOG_LEVEL"`
	Format string `env:"TL_LOG_FORMAT"`
	File   string `env:"TL_LOG_FILE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TL_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			DueLayout:       domain.DefaultDueLayout,
			RefreshInterval: 60 * time.Second,
			DefaultSort:     "none",
		},
		Store: StoreConfig{
			Driver: DriverMemory,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Display configuration
	if layout := os.Getenv("TL_DUE_LAYOUT"); layout != "" {
		c.Display.DueLayout = layout
	}
	if interval := os.Getenv("TL_REFRESH_INTERVAL"); interval != "" {
		c.Display.RefreshInterval = ParseDurationWithFallback(interval, c.Display.RefreshInterval)
	}
	if sort := os.Getenv("TL_DEFAULT_SORT"); sort != "" {
		c.Display.DefaultSort = sort
	}

	// Store configuration
	if driver := os.Getenv("TL_STORE_DRIVER"); driver != "" {
		c.Store.Driver = driver
	}

	// Logging configuration
	if level := os.Getenv("TL_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TL_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if file := os.Getenv("TL_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	// Application configuration
	if timeout := os.Getenv("TL_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate display configuration
	if strings.TrimSpace(c.Display.DueLayout) == "" {
		return &ConfigError{Field: "display.due_layout", Message: "due date layout cannot be empty"}
	}
	if c.Display.RefreshInterval <= 0 {
		return &ConfigError{Field: "display.refresh_interval", Message: "refresh interval must be positive"}
	}
	switch c.Display.DefaultSort {
	case "", "none", "asc", "desc":
	default:
		return &ConfigError{Field: "display.default_sort", Message: "default sort must be none, asc or desc"}
	}

	// Validate store configuration
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return &ConfigError{Field: "store.driver", Message: "store driver must be memory or sqlite"}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be debug, info, warn or error"}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be text, json or logfmt"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
