package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, config.SessionDriverFile, cfg.Session.Driver)
	assert.Contains(t, cfg.Session.File, ".catalog-admin")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://catalog.example.com/api")
	t.Setenv("API_TIMEOUT_SECONDS", "3")
	t.Setenv("SESSION_DRIVER", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://catalog.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout())
	assert.Equal(t, config.SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Session.Redis.URL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("SESSION_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TimeoutNoNumerico_UsaDefault(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
}

func TestLoad_StorageInvalido(t *testing.T) {
	t.Setenv("STUB_STORAGE", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "admin", Password: "p@ss:word",
		DBName: "catalog", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://admin:p%40ss%3Aword@db:5432/catalog?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@remote/x"
	assert.Equal(t, "postgres://u:p@remote/x", c.ConnectionString())
}
