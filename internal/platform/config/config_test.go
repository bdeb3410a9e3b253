package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "https://api.tienda.example.com", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
		assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tienda.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: http://localhost:9000\ncall_timeout: 5s\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.CallTimeout)
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tienda.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: http://localhost:9000\n"), 0o600))
		t.Setenv("TIENDA_BASE_URL", "http://localhost:7000")
		t.Setenv("TIENDA_DEBUG", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:7000", cfg.BaseURL)
		assert.True(t, cfg.Debug)
	})

	t.Run("malformed duration is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tienda.yaml")
		require.NoError(t, os.WriteFile(path, []byte("call_timeout: pronto\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing yaml file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
