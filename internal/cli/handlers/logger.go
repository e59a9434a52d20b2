package handlers

import (
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/log"
)

// NewLogger builds a logger for a long-running command, writing to deps.Stderr
// at the configured log_level.
func NewLogger(deps *cli.Deps, component string) *log.Logger {
	level, err := log.ParseLevel(deps.Config.LogLevel)
	if err != nil {
		_, _ = deps.Stderr.Write([]byte("Warning: " + err.Error() + ", using info\n"))
	}
	return log.New(log.Config{
		Level:     level,
		Component: component,
		Output:    deps.Stderr,
	})
}
