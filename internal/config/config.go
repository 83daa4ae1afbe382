package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// MemoryDatabase is the filename that selects an in-memory store
const MemoryDatabase = ":memory:"

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig    `json:"database"`
	Server      ServerConfig      `json:"server"`
	Display     DisplayConfig     `json:"display"`
	Logging     LoggingConfig     `json:"logging"`
	Application ApplicationConfig `json:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `env:"TODO_DB_DIR" json:"dir" validate:"required"`
	Filename     string        `env:"TODO_DB_FILENAME" json:"filename" validate:"required"`
	QueryTimeout time.Duration `env:"TODO_DB_QUERY_TIMEOUT" json:"query_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `env:"TODO_DB_WRITE_TIMEOUT" json:"write_timeout" validate:"gt=0"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `env:"TODO_HOST" json:"host"`
	Port            int           `env:"TODO_PORT" json:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `env:"TODO_SERVER_READ_TIMEOUT" json:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `env:"TODO_SERVER_WRITE_TIMEOUT" json:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"TODO_SERVER_SHUTDOWN_TIMEOUT" json:"shutdown_timeout" validate:"gt=0"`
	Debug           bool          `env:"TODO_DEBUG" json:"debug"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TODO_TIME_DISPLAY_FORMAT" json:"time_format" validate:"required"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `env:"TODO_LOG_LEVEL" json:"level" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT" json:"timeout" validate:"gt=0"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "todos.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Debug:           false,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == MemoryDatabase {
		return MemoryDatabase
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogLevel returns the effective log level; debug mode forces DEBUG
func (c *Config) LogLevel() string {
	if c.Server.Debug {
		return "DEBUG"
	}
	return strings.ToUpper(c.Logging.Level)
}

// LoadFromEnvironment overrides fields whose environment variables are set.
// Unset variables leave the current values untouched.
func (c *Config) LoadFromEnvironment() error {
	sections := []interface{}{
		&c.Database,
		&c.Server,
		&c.Display,
		&c.Logging,
		&c.Application,
	}
	for _, section := range sections {
		if _, err := env.UnmarshalFromEnviron(section); err != nil {
			return &ConfigError{Field: "environment", Message: err.Error()}
		}
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates the configuration and returns the first failure as a *ConfigError
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &ConfigError{Field: "config", Message: err.Error()}
	}

	fe := validationErrors[0]
	return &ConfigError{Field: fieldPath(fe.Namespace()), Message: ruleMessage(fe)}
}

// fieldPath turns "Config.server.port" into "server.port"
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gt":
		return "must be positive"
	case "min", "max":
		return "must be between 1 and 65535"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
