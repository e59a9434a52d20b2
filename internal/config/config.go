package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timesplit/internal/app"
	"github.com/xolan/timesplit/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// ValidFormats lists the accepted values for default_format
var ValidFormats = []string{"text", "json", "yaml", "markdown", "html"}

// ValidLogLevels lists the accepted values for log_level
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	// DefaultFormat is the output format used when --format is not given
	DefaultFormat string `toml:"default_format"`
	// Theme is the bubbletint theme ID used by the TUI (empty = built-in default)
	Theme string `toml:"theme"`
	// ServeBind is the address the web UI listens on
	ServeBind string `toml:"serve_bind"`
	// ServePort is the port the web UI listens on
	ServePort int `toml:"serve_port"`
	// WatchDebounce is the minimum time between re-analyses in watch mode (Go duration, e.g. "1s")
	WatchDebounce string `toml:"watch_debounce"`
	// LogLevel controls diagnostic logging for watch and serve
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
// - default_format: "text"
// - serve_bind: "127.0.0.1" (local only)
// - serve_port: 8080
// - watch_debounce: "1s"
// - log_level: "info"
func DefaultConfig() Config {
	return Config{
		DefaultFormat: "text",
		Theme:         "",
		ServeBind:     "127.0.0.1",
		ServePort:     8080,
		WatchDebounce: "1s",
		LogLevel:      "info",
	}
}

// Normalize lower-cases and trims enumerated string fields in place.
func (c *Config) Normalize() {
	c.DefaultFormat = strings.ToLower(strings.TrimSpace(c.DefaultFormat))
	c.Theme = strings.TrimSpace(c.Theme)
	c.ServeBind = strings.TrimSpace(c.ServeBind)
	c.WatchDebounce = strings.TrimSpace(c.WatchDebounce)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.DefaultFormat) {
		return fmt.Errorf("invalid default_format %q: must be one of %s", c.DefaultFormat, strings.Join(ValidFormats, ", "))
	}

	if c.ServeBind == "" {
		return fmt.Errorf("invalid serve_bind: must not be empty")
	}

	if c.ServePort < 1 || c.ServePort > 65535 {
		return fmt.Errorf("invalid serve_port %d: must be between 1 and 65535", c.ServePort)
	}

	if _, err := c.Debounce(); err != nil {
		return err
	}

	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	return nil
}

// Debounce parses WatchDebounce.
func (c *Config) Debounce() (time.Duration, error) {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch_debounce %q: %w", c.WatchDebounce, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid watch_debounce %q: must not be negative", c.WatchDebounce)
	}
	return d, nil
}

// Load reads the config file at path, merges it over the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns the defaults.
// Errors other than a missing file are returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	return Load(path)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, app.Name)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# timesplit configuration file
# All settings are optional; the values shown are the defaults.

# Output format when --format is not given: text, json, yaml, markdown, html
# default_format = "text"

# TUI color theme (any bubbletint theme ID, e.g. "dracula", "nord", "gruvbox_dark")
# theme = "dracula"

# Web UI listen address and port
# serve_bind = "127.0.0.1"
# serve_port = 8080

# Minimum time between re-analyses in watch mode
# watch_debounce = "1s"

# Diagnostic log level for watch and serve: debug, info, warn, error
# log_level = "info"
`
}
