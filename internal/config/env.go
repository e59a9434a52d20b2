package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings
const (
	EnvFormat   = "TIMESPLIT_FORMAT"
	EnvTheme    = "TIMESPLIT_THEME"
	EnvBind     = "TIMESPLIT_BIND"
	EnvPort     = "TIMESPLIT_PORT"
	EnvLogLevel = "TIMESPLIT_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any TIMESPLIT_* environment variables and
// re-validates the result.
func ApplyEnv(cfg Config) (Config, error) {
	if v, ok := os.LookupEnv(EnvFormat); ok {
		cfg.DefaultFormat = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv(EnvBind); ok {
		cfg.ServeBind = v
	}
	if v, ok := os.LookupEnv(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: must be a number", EnvPort, v)
		}
		cfg.ServePort = port
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadEffective resolves the config file, loads it (or the defaults), applies
// .env and environment overrides, and returns the result with the file path.
func LoadEffective() (Config, string, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return Config{}, "", err
	}

	path, err := GetConfigPath()
	if err != nil {
		return Config{}, "", err
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		return Config{}, path, err
	}

	cfg, err = ApplyEnv(cfg)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
