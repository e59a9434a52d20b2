package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timesplit/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "default_format: %s\n", cfg.DefaultFormat)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "theme:          (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "theme:          %s\n", cfg.Theme)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "serve_bind:     %s\n", cfg.ServeBind)
	_, _ = fmt.Fprintf(deps.Stdout, "serve_port:     %d\n", cfg.ServePort)
	_, _ = fmt.Fprintf(deps.Stdout, "watch_debounce: %s\n", cfg.WatchDebounce)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:      %s\n", cfg.LogLevel)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
