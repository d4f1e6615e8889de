// Package cliconfig loads the boatpay command line configuration.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AlexNT-maker/auto-payroll-system/internal/apiclient"
	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
)

const (
	// UserConfigDir is the directory for the user config, relative to $HOME.
	UserConfigDir = ".config/boatpay"
	// UserConfigFile is the name of the user config file.
	UserConfigFile = "config.yaml"
)

// Config is the CLI configuration.
type Config struct {
	BaseURL    string        `yaml:"base_url" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout" validate:"gt=0"`
	SubmitMode string        `yaml:"submit_mode" validate:"oneof=per_row batch"`
	LogLevel   string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:    apiclient.DefaultBaseURL,
		Timeout:    30 * time.Second,
		SubmitMode: string(attendance.ModePerRow),
		LogLevel:   "info",
	}
}

// Merge overlays the non-zero fields of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.SubmitMode != "" {
		c.SubmitMode = other.SubmitMode
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Mode returns the parsed submit mode.
func (c *Config) Mode() attendance.Mode {
	mode, err := attendance.ParseMode(c.SubmitMode)
	if err != nil {
		return attendance.ModePerRow
	}
	return mode
}

// LoadFromFile reads a YAML config file without applying defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToFile writes the config as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// UserConfigPath returns ~/.config/boatpay/config.yaml, or "" without a home.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// Load merges the file at path (or the user config when path is empty) over
// the defaults and validates the result. A missing user config is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		switch {
		case err == nil:
			cfg.Merge(fileCfg)
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
