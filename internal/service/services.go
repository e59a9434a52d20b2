// Package service is the application layer shared by the CLI, TUI and web
// frontends. It wraps the analyzer and config packages.
package service

import (
	"github.com/xolan/timesplit/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Analysis *AnalysisService
	Config   *ConfigService
}

// NewServices creates a new Services instance from the effective configuration
func NewServices() (*Services, error) {
	cfg, configPath, err := config.LoadEffective()
	if err != nil {
		return nil, err
	}
	return NewServicesWithPath(configPath, cfg), nil
}

// NewServicesWithPath creates a new Services instance with a custom config path (useful for testing)
func NewServicesWithPath(configPath string, cfg config.Config) *Services {
	return &Services{
		Analysis: NewAnalysisService(DefaultReadConcurrency),
		Config:   NewConfigService(configPath, cfg),
	}
}
