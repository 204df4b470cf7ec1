// Package config manages user-level configuration for the awsdsc CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	ConfigDirName   = ".awsdsc"
	ConfigFileName  = "config.json"
	DefaultLogLevel = "warn"
)

// GlobalConfig holds user-level defaults. Command-line flags override every
// field here.
type GlobalConfig struct {
	DefaultRegion       string `json:"default_region"`
	DefaultFormat       string `json:"default_format"`
	LogLevel            string `json:"log_level"`
	Colorize            bool   `json:"colorize"`
	HistoryPath         string `json:"history_path"`
	RateLimitPerService int    `json:"rate_limit_per_service"` // req/s
	CacheTTLSeconds     int    `json:"cache_ttl_seconds"`
}

// DefaultGlobalConfig returns sensible defaults.
func DefaultGlobalConfig() GlobalConfig {
	home, _ := os.UserHomeDir()
	return GlobalConfig{
		DefaultFormat:       "json",
		LogLevel:            DefaultLogLevel,
		Colorize:            true,
		HistoryPath:         filepath.Join(home, ConfigDirName, "history.db"),
		RateLimitPerService: 10,
		CacheTTLSeconds:     300,
	}
}

// ConfigDir returns the global awsdsc config directory path.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ConfigDirName)
}

// LoadGlobalConfig loads the global config from ~/.awsdsc/config.json.
// A missing file yields the defaults.
func LoadGlobalConfig() (GlobalConfig, error) {
	path := filepath.Join(ConfigDir(), ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}

	cfg := DefaultGlobalConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig persists the global config to ~/.awsdsc/config.json.
func SaveGlobalConfig(cfg GlobalConfig) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0600)
}
