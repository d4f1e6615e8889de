package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, attendance.ModePerRow, cfg.Mode())
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}},
		{name: "batch mode", modify: func(c *Config) { c.SubmitMode = "batch" }},
		{name: "missing base url", modify: func(c *Config) { c.BaseURL = "" }, wantErr: true},
		{name: "base url not a url", modify: func(c *Config) { c.BaseURL = "localhost" }, wantErr: true},
		{name: "unknown submit mode", modify: func(c *Config) { c.SubmitMode = "saga" }, wantErr: true},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: "http://backend:9000"
submit_mode: batch
timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.BaseURL)
	assert.Equal(t, attendance.ModeBatch, cfg.Mode())
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithoutUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("submit_mode: later\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
