package main

import (
	"fmt"
	"os"

	"github.com/xolan/timesplit/cmd"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/config"
	"github.com/xolan/timesplit/internal/service"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func run() int {
	cfg, path, err := config.LoadEffective()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cli.SetDeps(cli.NewDeps(service.NewServicesWithPath(path, cfg), cfg))
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
