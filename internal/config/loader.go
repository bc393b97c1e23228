package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"tasklist/internal/errors"
)

// fileConfig mirrors Config as it appears in a TOML file. Durations are
// strings such as "60s".
type fileConfig struct {
	Display struct {
		DueLayout       string `toml:"due_layout"`
		RefreshInterval string `toml:"refresh_interval"`
		DefaultSort     string `toml:"default_sort"`
	} `toml:"display"`
	Store struct {
		Driver string `toml:"driver"`
	} `toml:"store"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		File   string `toml:"file"`
	} `toml:"logging"`
	Application struct {
		Timeout string `toml:"timeout"`
	} `toml:"application"`
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
	envFile    string
	explicit   bool
}

// NewLoader creates a new configuration loader reading the default files
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configFile: DefaultFile,
		envFile:    DefaultEnvFile,
	}
}

// WithConfigFile sets the TOML file to read. An explicitly set file must
// exist; the default one is optional.
func (l *Loader) WithConfigFile(path string) *Loader {
	if path != "" {
		l.configFile = path
		l.explicit = true
	}
	return l
}

// WithEnvFile sets the dotenv file to read. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file
// 3. Fill the environment from the dotenv file
// 4. Override with environment variables
// 5. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromFile(l.configFile, l.explicit); err != nil {
		return nil, err
	}

	if err := LoadDotEnv(l.envFile); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile merges the values set in a TOML file. A missing file is only
// an error when required is true.
func (c *Config) LoadFromFile(path string, required bool) error {
	if path == "" {
		return nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if !required && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.NewConfigError(path, err)
	}

	if fc.Display.DueLayout != "" {
		c.Display.DueLayout = fc.Display.DueLayout
	}
	if fc.Display.RefreshInterval != "" {
		d, err := time.ParseDuration(fc.Display.RefreshInterval)
		if err != nil {
			return errors.NewConfigError(path, err).WithContext("key", "display.refresh_interval")
		}
		c.Display.RefreshInterval = d
	}
	if fc.Display.DefaultSort != "" {
		c.Display.DefaultSort = fc.Display.DefaultSort
	}
	if fc.Store.Driver != "" {
		c.Store.Driver = fc.Store.Driver
	}
	if fc.Logging.Level != "" {
		c.Logging.Level = fc.Logging.Level
	}
	if fc.Logging.Format != "" {
		c.Logging.Format = fc.Logging.Format
	}
	if fc.Logging.File != "" {
		c.Logging.File = fc.Logging.File
	}
	if fc.Application.Timeout != "" {
		d, err := time.ParseDuration(fc.Application.Timeout)
		if err != nil {
			return errors.NewConfigError(path, err).WithContext("key", "application.timeout")
		}
		c.Application.Timeout = d
	}

	return nil
}

// LoadDotEnv sets variables from a dotenv file without overriding ones
// already present in the environment. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.NewConfigError(path, err)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Display overrides
	DueLayout       *string
	RefreshInterval *time.Duration
	DefaultSort     *string

	// Store overrides
	Driver *string

	// Logging overrides
	LogLevel  *string
	LogFormat *string
	LogFile   *string

	// Application overrides
	Timeout *time.Duration
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Display overrides
	if overrides.DueLayout != nil {
		config.Display.DueLayout = *overrides.DueLayout
	}
	if overrides.RefreshInterval != nil {
		config.Display.RefreshInterval = *overrides.RefreshInterval
	}
	if overrides.DefaultSort != nil {
		config.Display.DefaultSort = *overrides.DefaultSort
	}

	// Store overrides
	if overrides.Driver != nil {
		config.Store.Driver = *overrides.Driver
	}

	// Logging overrides
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}
	if overrides.LogFile != nil {
		config.Logging.File = *overrides.LogFile
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}
