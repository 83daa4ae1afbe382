package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("TODO_DB_DIR", tmpDir)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)
	defer repo.Close()

	_, err = os.Stat(filepath.Join(tmpDir, "todos.db"))
	assert.NoError(t, err, "database file is created inside a freshly made directory")

	ctx := context.Background()
	require.NoError(t, repo.CreateItem(ctx, &sqlite.Item{Title: "Test item"}))

	items, err := repo.ListItemsOrderedBy(ctx, sqlite.FieldCreatedAt, true)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateRepository_Memory(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "unused")
	cfg.Database.Filename = MemoryDatabase

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(cfg.Database.Dir)
	assert.True(t, os.IsNotExist(err), "no directory is created for an in-memory store")
}

func TestConfig_StoreOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.QueryTimeout = 3 * time.Second
	cfg.Database.WriteTimeout = 2 * time.Second

	opts := cfg.StoreOptions()

	assert.Equal(t, 3*time.Second, opts.QueryTimeout)
	assert.Equal(t, 2*time.Second, opts.WriteTimeout)
}
