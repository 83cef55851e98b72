// Package config holds Tanya Jaksa configuration, persisted as JSON under
// the data directory. Environment variables override file values so demos
// and tests can tune timings without editing config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AppConfig is the single source of truth for runtime settings.
type AppConfig struct {
	// Theme for the TUI ("light" or "dark").
	Theme string `json:"theme,omitempty"`

	// DataDir holds the SQLite store and log files.
	DataDir string `json:"data_dir,omitempty"`

	// DebugMode enables debug-level logging to the log file.
	DebugMode bool `json:"debug_mode,omitempty"`

	// Simulated timing knobs, in milliseconds. Zero means default.
	SplashDelayMS     int `json:"splash_delay_ms,omitempty"`
	ChatDelayMS       int `json:"chat_delay_ms,omitempty"`
	AssistanceDelayMS int `json:"assistance_delay_ms,omitempty"`
	LoginDelayMS      int `json:"login_delay_ms,omitempty"`

	// ChatFailureRate is the simulated chance a chat-start submission fails.
	ChatFailureRate float64 `json:"chat_failure_rate,omitempty"`
}

// Defaults matching the prototype's fixed timings.
const (
	defaultSplashDelayMS     = 2500
	defaultChatDelayMS       = 1000
	defaultAssistanceDelayMS = 2000
	defaultLoginDelayMS      = 1500
	defaultChatFailureRate   = 0.05
)

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Theme:             "light",
		DataDir:           DefaultDataDir(),
		SplashDelayMS:     defaultSplashDelayMS,
		ChatDelayMS:       defaultChatDelayMS,
		AssistanceDelayMS: defaultAssistanceDelayMS,
		LoginDelayMS:      defaultLoginDelayMS,
		ChatFailureRate:   defaultChatFailureRate,
	}
}

// DefaultDataDir is ~/.tanyajaksa, falling back to the working directory
// when the home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tanyajaksa"
	}
	return filepath.Join(home, ".tanyajaksa")
}

// DefaultPath is the config file location inside the data dir.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.json")
}

// Load reads config from path, layering defaults under the file contents and
// environment overrides on top. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.fillZeroes()
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory if needed.
func (c *AppConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers TANYAJAKSA_* environment variables over the file.
func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv("TANYAJAKSA_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("TANYAJAKSA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TANYAJAKSA_DEBUG"); v == "1" || v == "true" {
		c.DebugMode = true
	}
	if v := os.Getenv("TANYAJAKSA_SPLASH_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.SplashDelayMS = n
		}
	}
	if v := os.Getenv("TANYAJAKSA_CHAT_FAILURE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			c.ChatFailureRate = f
		}
	}
}

// fillZeroes restores defaults for fields the file explicitly zeroed.
func (c *AppConfig) fillZeroes() {
	if c.Theme == "" {
		c.Theme = "light"
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.SplashDelayMS <= 0 {
		c.SplashDelayMS = defaultSplashDelayMS
	}
	if c.ChatDelayMS <= 0 {
		c.ChatDelayMS = defaultChatDelayMS
	}
	if c.AssistanceDelayMS <= 0 {
		c.AssistanceDelayMS = defaultAssistanceDelayMS
	}
	if c.LoginDelayMS <= 0 {
		c.LoginDelayMS = defaultLoginDelayMS
	}
	if c.ChatFailureRate <= 0 {
		c.ChatFailureRate = defaultChatFailureRate
	}
}

// SplashDelay returns the splash hold time as a duration.
func (c *AppConfig) SplashDelay() time.Duration {
	return time.Duration(c.SplashDelayMS) * time.Millisecond
}

// ChatDelay returns the simulated chat-creation latency.
func (c *AppConfig) ChatDelay() time.Duration {
	return time.Duration(c.ChatDelayMS) * time.Millisecond
}

// AssistanceDelay returns the simulated assistance-filing latency.
func (c *AppConfig) AssistanceDelay() time.Duration {
	return time.Duration(c.AssistanceDelayMS) * time.Millisecond
}

// LoginDelay returns the simulated credential-check latency.
func (c *AppConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// DBPath is the SQLite file location inside the data dir.
func (c *AppConfig) DBPath() string {
	return filepath.Join(c.DataDir, "tanyajaksa.db")
}

// LogDir is the log directory inside the data dir.
func (c *AppConfig) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}
