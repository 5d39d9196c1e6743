package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithPath(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "status-app", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "status_app", cfg.Database.DBName)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "status-app.change-log", cfg.Kafka.Topic)
	assert.Equal(t, []string{"*"}, cfg.Server.WSAllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "SERVER_PORT=9090\nDATABASE_DBNAME=statuspage\nAUTH_JWT_SECRET=unit-test-secret\nSERVER_WS_ALLOWED_ORIGINS=status.acme.com,app.acme.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadWithPath(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "statuspage", cfg.Database.DBName)
	assert.Equal(t, "unit-test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"status.acme.com", "app.acme.com"}, cfg.Server.WSAllowedOrigins)
}

func TestServerAddr(t *testing.T) {
	cfg := &ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadWithPath(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		return cfg
	}

	t.Run("invalid port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := base()
		cfg.Database.DBName = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("kafka enabled without brokers", func(t *testing.T) {
		cfg := base()
		cfg.Kafka.Enabled = true
		cfg.Kafka.Brokers = nil
		assert.Error(t, cfg.Validate())
	})
}
