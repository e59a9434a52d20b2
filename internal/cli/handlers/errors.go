// Package handlers implements the CLI commands on top of cli.Deps.
package handlers

import (
	"fmt"

	"github.com/xolan/timesplit/internal/cli"
)

// fail prints the Error/Details/Hint block to stderr and exits with 1.
// Empty details or hint lines are omitted.
func fail(deps *cli.Deps, message string, details error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if details != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", details)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}
