package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, "todos.db", cfg.Database.Filename)
}

func TestLoader_Load_MissingEnvFileIsIgnored(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	_, err := NewLoader().WithEnvFile(missing).Load()
	assert.NoError(t, err)
}

func TestLoader_Load_EnvFile(t *testing.T) {
	require.NoError(t, os.Unsetenv("TODO_TIME_DISPLAY_FORMAT"))
	t.Cleanup(func() { os.Unsetenv("TODO_TIME_DISPLAY_FORMAT") })
	t.Setenv("TODO_LOG_LEVEL", "WARN")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "TODO_TIME_DISPLAY_FORMAT=\"02/01 15:04\"\nTODO_LOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := NewLoader().WithEnvFile(envFile).Load()
	require.NoError(t, err)

	assert.Equal(t, "02/01 15:04", cfg.Display.TimeFormat)
	assert.Equal(t, "WARN", cfg.Logging.Level, "the process environment wins over the dotenv file")
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "LOUD")

	_, err := NewLoader().WithEnvFile("").Load()

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "logging.level", configErr.Field)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("TODO_PORT", "9000")

	dir := "/srv/todo"
	port := 8088
	debug := true
	format := "15:04"
	level := "ERROR"
	timeout := 5 * time.Second

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		DBDir:      &dir,
		Port:       &port,
		Debug:      &debug,
		TimeFormat: &format,
		LogLevel:   &level,
		Timeout:    &timeout,
	})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Database.Dir)
	assert.Equal(t, port, cfg.Server.Port, "flags win over the environment")
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, format, cfg.Display.TimeFormat)
	assert.Equal(t, level, cfg.Logging.Level)
	assert.Equal(t, timeout, cfg.Application.Timeout)
}

func TestLoader_LoadWithOverrides_Nil(t *testing.T) {
	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoader_LoadWithOverrides_Revalidates(t *testing.T) {
	port := 0

	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Port: &port})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "server.port", configErr.Field)
}

func TestLoader_LoadWithOverrides_FlagFixesEnvironment(t *testing.T) {
	t.Setenv("TODO_PORT", "0")
	port := 8080

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Port: &port})
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)

	_, err = NewLoader().WithEnvFile("").Load()
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr, "without the flag the environment value is still rejected")
	assert.Equal(t, "server.port", configErr.Field)
}
