package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "go-log-grapher"

// Config holds all go-log-grapher configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Order   OrderConfig   `toml:"order"`
}

// GeneralConfig holds logging preferences.
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file,omitempty"`
	LogFormat string `toml:"log_format"`
}

// DisplayConfig holds output preferences.
type DisplayConfig struct {
	Output     string `toml:"output"`
	ShowGaps   bool   `toml:"show_gaps"`
	ChartWidth int    `toml:"chart_width"`
	Color      bool   `toml:"color"`
}

// OrderConfig points at a default display-order file.
type OrderConfig struct {
	File string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Display: DisplayConfig{
			Output: "chart",
			Color:  true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the default config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to path, creating its directory.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
