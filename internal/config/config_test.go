package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 2500*time.Millisecond, cfg.SplashDelay())
	assert.InDelta(t, 0.05, cfg.ChatFailureRate, 1e-9)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark","splash_delay_ms":100}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 100*time.Millisecond, cfg.SplashDelay())
	assert.Equal(t, 1000*time.Millisecond, cfg.ChatDelay(), "unset fields keep defaults")
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TANYAJAKSA_THEME", "dark")
	t.Setenv("TANYAJAKSA_SPLASH_DELAY_MS", "50")
	t.Setenv("TANYAJAKSA_CHAT_FAILURE_RATE", "0.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 50*time.Millisecond, cfg.SplashDelay())
	assert.InDelta(t, 0.5, cfg.ChatFailureRate, 1e-9)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Theme = "dark"
	cfg.ChatDelayMS = 10
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, 10*time.Millisecond, got.ChatDelay())
}
