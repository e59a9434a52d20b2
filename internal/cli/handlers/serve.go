package handlers

import (
	"context"

	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/log"
	"github.com/xolan/timesplit/internal/web"
)

// ServeOptions are the flags of the serve command. Zero values fall back to config.
type ServeOptions struct {
	Bind    string
	Port    int
	Version string
}

// Serve runs the web UI until ctx is done.
func Serve(ctx context.Context, deps *cli.Deps, logger *log.Logger, opts ServeOptions) {
	bind := opts.Bind
	if bind == "" {
		bind = deps.Config.ServeBind
	}
	port := opts.Port
	if port == 0 {
		port = deps.Config.ServePort
	}

	srv, err := web.NewServer(deps.Services, logger, opts.Version, bind, port)
	if err != nil {
		fail(deps, "Failed to start web UI", err, "")
		return
	}

	if err := web.Run(ctx, srv, logger); err != nil {
		fail(deps, "Web UI stopped with an error", err, "Check that the port is free or choose another with --port")
	}
}
