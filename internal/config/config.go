package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"task-planner/internal/locale"
)

// Config holds all configuration options for the task planner
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Auth       AuthConfig       `mapstructure:"auth" yaml:"auth"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit" yaml:"rate_limit"`
	CORS       CORSConfig       `mapstructure:"cors" yaml:"cors"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Display    DisplayConfig    `mapstructure:"display" yaml:"display"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path" yaml:"path"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout" yaml:"query_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	BusyTimeout     time.Duration `mapstructure:"busy_timeout" yaml:"busy_timeout"`
	DirPermissions  uint32        `mapstructure:"dir_permissions" yaml:"dir_permissions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	Mode            string        `mapstructure:"mode" yaml:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// AuthConfig holds the single basic auth account
type AuthConfig struct {
	Login    string `mapstructure:"login" yaml:"login"`
	Password string `mapstructure:"password" yaml:"password"`
}

// LoggingConfig holds logger configuration. File is optional; when set, JSON
// logs are also written there and rotated.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Debug      bool   `mapstructure:"debug" yaml:"debug"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// RateLimitConfig holds the per-client token bucket settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// CORSConfig applies to the JSON API only
type CORSConfig struct {
	AllowOrigins []string      `mapstructure:"allow_origins" yaml:"allow_origins"`
	AllowMethods []string      `mapstructure:"allow_methods" yaml:"allow_methods"`
	MaxAge       time.Duration `mapstructure:"max_age" yaml:"max_age"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength   int  `mapstructure:"task_name_min_length" yaml:"task_name_min_length"`
	TaskNameMaxLength   int  `mapstructure:"task_name_max_length" yaml:"task_name_max_length"`
	CommentMaxLength    int  `mapstructure:"comment_max_length" yaml:"comment_max_length"`
	RejectPastDeadlines bool `mapstructure:"reject_past_deadlines" yaml:"reject_past_deadlines"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Path:            filepath.Join(homeDir, ".task-planner", "tasks.db"),
			QueryTimeout:    10 * time.Second,
			WriteTimeout:    5 * time.Second,
			MaxOpenConns:    4,
			MaxIdleConns:    4,
			ConnMaxLifetime: time.Hour,
			BusyTimeout:     5 * time.Second,
			DirPermissions:  0755,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 30,
			MaxAgeDays: 90,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "DELETE"},
			MaxAge:       12 * time.Hour,
		},
		Validation: ValidationConfig{
			TaskNameMinLength:   1,
			TaskNameMaxLength:   255,
			CommentMaxLength:    2000,
			RejectPastDeadlines: true,
		},
		Display: DisplayConfig{
			Locale: "en",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return c.Database.Path
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Database.MaxOpenConns < 1 {
		return &ConfigError{Field: "database.max_open_conns", Message: "at least one connection is required"}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return &ConfigError{Field: "server.mode", Message: "mode must be debug, release or test"}
	}

	if c.Auth.Login == "" {
		return &ConfigError{Field: "auth.login", Message: "login is required"}
	}
	if c.Auth.Password == "" {
		return &ConfigError{Field: "auth.password", Message: "password is required"}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "level must be debug, info, warn or error"}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return &ConfigError{Field: "rate_limit", Message: "requests per second and burst must be positive"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}
	if c.Validation.CommentMaxLength < 0 {
		return &ConfigError{Field: "validation.comment_max_length", Message: "comment maximum length cannot be negative"}
	}

	if !locale.IsSupported(c.Display.Locale) {
		return &ConfigError{Field: "display.locale", Message: "unsupported locale " + strconv.Quote(c.Display.Locale)}
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
