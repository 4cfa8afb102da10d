package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads,
// e.g. TP_DATABASE_PATH or TP_AUTH_LOGIN
const EnvPrefix = "TP"

// ConfigFileEnv names a YAML config file when --config is not given
const ConfigFileEnv = "TP_CONFIG_FILE"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v      *viper.Viper
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		v:      viper.New(),
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file from TP_CONFIG_FILE, if any
// 3. Override with TP_* environment variables
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line overrides
// last, then validates the result.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	configFile := os.Getenv(ConfigFileEnv)
	if overrides != nil && overrides.ConfigFile != nil && *overrides.ConfigFile != "" {
		configFile = *overrides.ConfigFile
	}

	if err := l.read(configFile); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) read(configFile string) error {
	setDefaults(l.v, l.config)

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return &ConfigError{Field: "config_file", Message: "config file not found: " + configFile}
			}
			return &ConfigError{Field: "config_file", Message: err.Error()}
		}
	}

	if err := l.v.Unmarshal(l.config); err != nil {
		return &ConfigError{Field: "config", Message: err.Error()}
	}
	return nil
}

// setDefaults registers every key so environment variables can override
// keys that appear in no config file
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("database.path", c.Database.Path)
	v.SetDefault("database.query_timeout", c.Database.QueryTimeout)
	v.SetDefault("database.write_timeout", c.Database.WriteTimeout)
	v.SetDefault("database.max_open_conns", c.Database.MaxOpenConns)
	v.SetDefault("database.max_idle_conns", c.Database.MaxIdleConns)
	v.SetDefault("database.conn_max_lifetime", c.Database.ConnMaxLifetime)
	v.SetDefault("database.busy_timeout", c.Database.BusyTimeout)
	v.SetDefault("database.dir_permissions", c.Database.DirPermissions)

	v.SetDefault("server.host", c.Server.Host)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("server.mode", c.Server.Mode)
	v.SetDefault("server.read_timeout", c.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", c.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)

	v.SetDefault("auth.login", c.Auth.Login)
	v.SetDefault("auth.password", c.Auth.Password)

	v.SetDefault("logging.level", c.Logging.Level)
	v.SetDefault("logging.debug", c.Logging.Debug)
	v.SetDefault("logging.file", c.Logging.File)
	v.SetDefault("logging.max_size_mb", c.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", c.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", c.Logging.MaxAgeDays)

	v.SetDefault("rate_limit.enabled", c.RateLimit.Enabled)
	v.SetDefault("rate_limit.requests_per_second", c.RateLimit.RequestsPerSecond)
	v.SetDefault("rate_limit.burst", c.RateLimit.Burst)

	v.SetDefault("cors.allow_origins", c.CORS.AllowOrigins)
	v.SetDefault("cors.allow_methods", c.CORS.AllowMethods)
	v.SetDefault("cors.max_age", c.CORS.MaxAge)

	v.SetDefault("validation.task_name_min_length", c.Validation.TaskNameMinLength)
	v.SetDefault("validation.task_name_max_length", c.Validation.TaskNameMaxLength)
	v.SetDefault("validation.comment_max_length", c.Validation.CommentMaxLength)
	v.SetDefault("validation.reject_past_deadlines", c.Validation.RejectPastDeadlines)

	v.SetDefault("display.locale", c.Display.Locale)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	// Database overrides
	DBPath         *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Server overrides
	Host *string
	Port *int

	// Logging overrides
	LogLevel *string
	Debug    *bool

	// Display overrides
	Locale *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBPath != nil {
		config.Database.Path = *overrides.DBPath
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	if overrides.Host != nil {
		config.Server.Host = *overrides.Host
	}
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.Debug != nil {
		config.Logging.Debug = *overrides.Debug
	}

	if overrides.Locale != nil {
		config.Display.Locale = *overrides.Locale
	}
}
