// Package config loads spindle's layered TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings the player core and its TUI read at startup.
type Config struct {
	InitialVolume int    `koanf:"initial_volume"` // 0-100, default 100
	StartPaused   bool   `koanf:"start_paused"`
	QueueCapacity int    `koanf:"queue_capacity"` // sample-buffer queue depth, default 100
	LogLevel      string `koanf:"log_level"`      // "debug", "info", "warn", "error"

	// Desktop notifications
	Notifications NotificationsConfig `koanf:"notifications"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled    *bool `koanf:"enabled"`     // master toggle (default: true)
	NowPlaying *bool `koanf:"now_playing"` // on track change (default: true)
}

// Load reads ~/.config/spindle/config.toml, then ./config.toml, applying
// defaults for anything neither file sets. A later file wins per key.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		InitialVolume: 100,
		QueueCapacity: 100,
		LogLevel:      "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.InitialVolume < 0 || cfg.InitialVolume > 100 {
		cfg.InitialVolume = 100
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 100
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "spindle", "config.toml"))
	}

	paths = append(paths, "config.toml")

	return paths
}

// GetNotificationsConfig returns the notification configuration with
// defaults applied.
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	cfg := c.Notifications

	if cfg.Enabled == nil {
		t := true
		cfg.Enabled = &t
	}
	if cfg.NowPlaying == nil {
		t := true
		cfg.NowPlaying = &t
	}

	return cfg
}
