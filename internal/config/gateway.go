package config

import (
	"fmt"
	"os"

	"day-planner/internal/repository/sqlite"
)

// CreateGateway creates a persistence gateway instance using the
// configuration system, creating the data directory if needed.
func CreateGateway(config *Config) (sqlite.Gateway, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	gateway, err := sqlite.NewWithTimeouts(config.GetDatabasePath(), config.GetQueryTimeout(), config.GetWriteTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return gateway, nil
}

// CreateTestGateway creates an in-memory gateway for testing
func CreateTestGateway() (sqlite.Gateway, error) {
	gateway, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return gateway, nil
}
