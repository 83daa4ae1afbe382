package config

import (
	"fmt"
	"os"

	"todo-list/internal/repository/sqlite"
)

// StoreOptions translates the database section into store options
func (c *Config) StoreOptions() sqlite.Options {
	return sqlite.Options{
		QueryTimeout: c.Database.QueryTimeout,
		WriteTimeout: c.Database.WriteTimeout,
	}
}

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != MemoryDatabase {
		if err := os.MkdirAll(config.Database.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, config.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}
