// Package config loads hcre's TOML configuration document, applying
// defaults first and then overriding them from a file when one is given.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is hcre's full configuration surface.
type Config struct {
	Engine struct {
		BlockSize    int `toml:"block_size"`
		MaxRuleFiles int `toml:"max_rule_files"`
	} `toml:"engine"`

	Diagnostics struct {
		Quiet    bool   `toml:"quiet"`
		DedupLog string `toml:"dedup_log"`
	} `toml:"diagnostics"`

	Debugger struct {
		HistorySize        int  `toml:"history_size"`
		ShowMemoryRegister bool `toml:"show_memory_register"`
	} `toml:"debugger"`
}

// DefaultConfig returns hashcat-compatible defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Engine.BlockSize = 64
	cfg.Engine.MaxRuleFiles = 0

	cfg.Diagnostics.Quiet = false
	cfg.Diagnostics.DedupLog = ""

	cfg.Debugger.HistorySize = 256
	cfg.Debugger.ShowMemoryRegister = true

	return cfg
}

// GetConfigPath returns the platform-specific default config path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "hcre")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "hcre")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config path, falling back
// to defaults when the file does not exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path, falling back to defaults
// when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Engine.BlockSize <= 0 {
		cfg.Engine.BlockSize = 64
	}

	return cfg, nil
}
