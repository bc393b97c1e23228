package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := writeFile(t, "tasklist.toml", `
[display]
refresh_interval = "15s"
default_sort = "asc"

[store]
driver = "sqlite"

[logging]
format = "json"
`)

	cfg, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Display.RefreshInterval)
	assert.Equal(t, "asc", cfg.Display.DefaultSort)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, NewConfig().Display.DueLayout, cfg.Display.DueLayout, "unset keys keep defaults")
}

func TestLoader_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("default file is optional", func(t *testing.T) {
		loader := NewLoader()
		loader.configFile = filepath.Join(dir, DefaultFile)
		loader.envFile = filepath.Join(dir, DefaultEnvFile)

		_, err := loader.Load()
		assert.NoError(t, err)
	})

	t.Run("explicit file is required", func(t *testing.T) {
		_, err := NewLoader().WithConfigFile(filepath.Join(dir, "nope.toml")).WithEnvFile("").Load()
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfig))
	})
}

func TestLoader_BadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", "[display\n"},
		{"bad duration", "[display]\nrefresh_interval = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.toml", tt.content)
			_, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfig))
		})
	}
}

func TestLoader_Precedence(t *testing.T) {
	unsetEnv(t, "TL_DEFAULT_SORT")
	unsetEnv(t, "TL_LOG_LEVEL")
	t.Setenv("TL_STORE_DRIVER", DriverMemory)

	configPath := writeFile(t, "tasklist.toml", `
[display]
default_sort = "asc"

[store]
driver = "sqlite"
`)
	envPath := writeFile(t, ".env", "TL_DEFAULT_SORT=desc\nTL_STORE_DRIVER=sqlite\nTL_LOG_LEVEL=warn\n")

	level := "error"
	cfg, err := NewLoader().WithConfigFile(configPath).WithEnvFile(envPath).
		LoadWithOverrides(&ConfigOverrides{LogLevel: &level})
	require.NoError(t, err)

	assert.Equal(t, "desc", cfg.Display.DefaultSort, ".env beats the config file")
	assert.Equal(t, DriverMemory, cfg.Store.Driver, "real environment beats .env")
	assert.Equal(t, "error", cfg.Logging.Level, "flags beat everything")
}

func TestLoader_OverridesAreValidated(t *testing.T) {
	driver := "postgres"
	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Driver: &driver})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "store.driver", configErr.Field)
}
