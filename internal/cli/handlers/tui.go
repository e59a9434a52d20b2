package handlers

import (
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/service"
)

// TUIRunner starts the interactive terminal UI and blocks until it exits
type TUIRunner func(services *service.Services) error

// TUI runs the terminal UI with the configured services.
func TUI(deps *cli.Deps, run TUIRunner) {
	if err := run(deps.Services); err != nil {
		fail(deps, "Failed to run terminal UI", err, "Run timesplit from an interactive terminal")
	}
}
