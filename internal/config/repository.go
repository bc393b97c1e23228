package config

import (
	"context"
	"fmt"

	"tasklist/internal/repository"
	"tasklist/internal/repository/memory"
	"tasklist/internal/repository/sqlite"
)

// CreateRepository creates the task store selected by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	switch config.Store.Driver {
	case DriverMemory, "":
		return memory.New(), nil
	case DriverSQLite:
		repo, err := sqlite.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "store.driver", Message: fmt.Sprintf("unknown store driver %q", config.Store.Driver)}
	}
}
