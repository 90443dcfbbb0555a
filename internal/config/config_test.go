package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults when the environment is empty", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fullstack-bank", cfg.AppName)
		assert.Equal(t, "0.0.0.0:8080", cfg.Address())
		assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.True(t, cfg.Migrations.Enabled)
		assert.Contains(t, cfg.Database.URL, "bank_db")
	})

	t.Run("Should prefer environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=require")
		t.Setenv("LOG_ENCODING", "console")
		t.Setenv("RUN_MIGRATIONS", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:9090", cfg.Address())
		assert.Equal(t, "postgres://u:p@db:5432/app?sslmode=require", cfg.Database.URL)
		assert.Equal(t, "console", cfg.Logger.Encoding)
		assert.False(t, cfg.Migrations.Enabled)
	})

	t.Run("Should parse bare seconds as durations", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Context.RequestTimeout)
	})
}
