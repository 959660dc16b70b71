package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", EnvLocal)

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.HTTP.Port)
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigin)
	assert.Equal(t, 2*time.Second, cfg.Mock.ScanDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Mock.FixDelay)
	assert.Equal(t, 3*time.Second, cfg.Mock.FixAllDelay)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 1000, cfg.Storage.HistoryLimit)
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", EnvDev)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("SCAN_DELAY", "0s")
	t.Setenv("FIXTURES_PATH", "/tmp/fixtures.yaml")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Zero(t, cfg.Mock.ScanDelay)
	assert.Equal(t, "/tmp/fixtures.yaml", cfg.Mock.FixturesPath)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "redis"}}
		assert.ErrorIs(t, cfg.Validate(), ErrUnknownStorageDriver)
	})

	t.Run("postgres without credentials", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: StoragePostgres}}
		assert.ErrorIs(t, cfg.Validate(), ErrPostgresConfigMissing)
	})

	t.Run("postgres with credentials", func(t *testing.T) {
		cfg := &Config{
			Storage: StorageConfig{Driver: StoragePostgres},
			Postgres: PostgresConfig{
				Username: "aggo",
				Database: "aggo",
			},
		}
		assert.NoError(t, cfg.Validate())
	})
}
