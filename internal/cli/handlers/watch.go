package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/log"
	"github.com/xolan/timesplit/internal/watch"
)

// WatchOptions are the flags of the watch command
type WatchOptions struct {
	Path        string
	Format      string
	ShowEntries bool
}

// Watch prints a fresh report every time the file changes, until ctx is done.
// Analysis errors are printed and watching continues.
func Watch(ctx context.Context, deps *cli.Deps, logger *log.Logger, opts WatchOptions) {
	formatName := opts.Format
	if formatName == "" {
		formatName = deps.Config.DefaultFormat
	}
	format, err := cli.ParseFormat(formatName)
	if err != nil {
		fail(deps, fmt.Sprintf("Invalid format '%s'", formatName), nil, "Use one of: text, json, yaml, markdown, html")
		return
	}

	debounce, err := deps.Config.Debounce()
	if err != nil {
		fail(deps, "Invalid watch_debounce setting", err, "Use a Go duration such as 500ms or 2s")
		return
	}

	handler := func(r watch.Result) {
		_, _ = fmt.Fprintf(deps.Stdout, "--- %s (%s) ---\n", r.Path, time.Now().Format("15:04:05"))
		if r.Err != nil {
			msg := r.Err.Error()
			var aErr *analyzer.Error
			if errors.As(r.Err, &aErr) {
				msg = analyzer.UserMessage(r.Err)
			}
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
			return
		}
		if err := cli.Render(deps.Stdout, r.Report, format, cli.RenderOptions{ShowEntries: opts.ShowEntries}); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write output: %v\n", err)
		}
	}

	w := watch.New(opts.Path, debounce, handler, logger)
	if err := w.Run(ctx); err != nil {
		hint := "Check that the directory exists: " + opts.Path
		if strings.Contains(err.Error(), "failed to create watcher") {
			hint = "Check the inotify limits of your system"
		}
		fail(deps, "Failed to watch file", err, hint)
	}
}
