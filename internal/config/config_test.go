package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 1024, cfg.Render.PreviewWidth)
	assert.Equal(t, 768, cfg.Render.PreviewHeight)
	assert.Equal(t, generation.DefaultParams(), cfg.Map)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  write_timeout: 2m
map:
  water_level: 0.5
  city_count: 12
store:
  driver: memory
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, 0.5, cfg.Map.WaterLevel)
	assert.Equal(t, 12, cfg.Map.CityCount)
	assert.Equal(t, 0.6, cfg.Map.Roughness)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0644))
	t.Setenv("SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"bad map default", func(c *Config) { c.Map.WaterLevel = 2 }, generation.ErrInvalidParameter},
		{"zero preview", func(c *Config) { c.Render.PreviewWidth = 0 }, render.ErrInvalidSize},
		{"limits too large", func(c *Config) { c.Render.MaxWidth = 100000 }, render.ErrInvalidSize},
		{"unknown driver", func(c *Config) { c.Store.Driver = "postgres" }, nil},
		{"sqlite without path", func(c *Config) { c.Store.Path = "" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Map.CastleCount = 7
	cfg.Server.Addr = ":1234"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Map.CastleCount)
	assert.Equal(t, ":1234", loaded.Server.Addr)
}
