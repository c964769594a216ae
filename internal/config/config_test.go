package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DriverJSON, cfg.Store.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("store:\n  driver: sqlite\n  path: /tmp/x.db\nui:\n  theme: neon\n"), 0o644))

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("TADA_LOG_LEVEL", "debug")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TADA_STORE_DRIVER", "sqlite")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("store", "", "")
	require.NoError(t, fs.Parse([]string{"--store", "memory"}))

	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("ui:\n  theme: mono\n"), 0o644))

	cfg, err := Load(p, fs)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Driver = "redis"
	assert.Error(t, cfg.Validate())
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, WriteDefault(p))

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
