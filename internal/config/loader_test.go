package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// clearEnv isolates a test from TP_* variables set in the caller's shell
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigFileEnv, "")
	for _, key := range []string{"TP_AUTH_LOGIN", "TP_AUTH_PASSWORD", "TP_DATABASE_PATH", "TP_SERVER_PORT", "TP_DISPLAY_LOCALE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeYAML(t *testing.T, doc map[string]interface{}) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestLoader_Load_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TP_AUTH_LOGIN", "admin")
	t.Setenv("TP_AUTH_PASSWORD", "secret")
	t.Setenv("TP_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("TP_DATABASE_QUERY_TIMEOUT", "3s")
	t.Setenv("TP_SERVER_PORT", "9090")
	t.Setenv("TP_CORS_ALLOW_ORIGINS", "http://a.example,http://b.example")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Auth.Login)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout, "untouched keys keep defaults")
}

func TestLoader_Load_MissingCredentials(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader().Load()
	require.Error(t, err)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "auth.login", configErr.Field)
}

func TestLoader_LoadWithOverrides_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, map[string]interface{}{
		"auth": map[string]interface{}{"login": "file-user", "password": "file-pass"},
		"database": map[string]interface{}{
			"path":          "/tmp/file.db",
			"write_timeout": "2s",
		},
		"server":  map[string]interface{}{"port": 7000},
		"display": map[string]interface{}{"locale": "ru"},
	})

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{ConfigFile: &path})
	require.NoError(t, err)

	assert.Equal(t, "file-user", cfg.Auth.Login)
	assert.Equal(t, "/tmp/file.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "ru", cfg.Display.Locale)
}

func TestLoader_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, map[string]interface{}{
		"auth":   map[string]interface{}{"login": "file-user", "password": "file-pass"},
		"server": map[string]interface{}{"port": 7000, "host": "127.0.0.1"},
	})
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("TP_SERVER_PORT", "7100")

	port := 7200
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{Port: &port})
	require.NoError(t, err)

	assert.Equal(t, 7200, cfg.Server.Port, "flags beat environment")
	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "file beats defaults")

	cfg, err = NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port, "environment beats file")
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TP_AUTH_LOGIN", "admin")
	t.Setenv("TP_AUTH_PASSWORD", "secret")

	dbPath := "/tmp/override.db"
	level := "debug"
	debug := true
	loc := "ru"
	host := "localhost"

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBPath:   &dbPath,
		LogLevel: &level,
		Debug:    &debug,
		Locale:   &loc,
		Host:     &host,
	})
	require.NoError(t, err)

	assert.Equal(t, dbPath, cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "ru", cfg.Display.Locale)
	assert.Equal(t, "localhost:8000", cfg.Address())
}

func TestLoader_InvalidOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TP_AUTH_LOGIN", "admin")
	t.Setenv("TP_AUTH_PASSWORD", "secret")

	loc := "de"
	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{Locale: &loc})
	assert.Error(t, err)
}

func TestLoader_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{ConfigFile: &missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
