package cli

import (
	"fmt"
	"log/slog"

	"todo-list/internal/config"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
)

// App holds the dependencies shared by every command
type App struct {
	service services.TodoService
	repo    sqlite.Repository
	config  *config.Config
	log     *slog.Logger
}

// AppFactory builds an App once configuration is resolved
type AppFactory func(cfg *config.Config, log *slog.Logger) (*App, error)

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.TodoService, repo sqlite.Repository, cfg *config.Config, log *slog.Logger) *App {
	return &App{
		service: service,
		repo:    repo,
		config:  cfg,
		log:     log,
	}
}

// NewDefaultApp opens the configured SQLite store and wires the service on top of it
func NewDefaultApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug("Database opened", "path", cfg.GetDatabasePath())
	return NewApp(services.NewTodoService(repo, log), repo, cfg, log), nil
}

// Close releases the store
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	if err := a.repo.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
