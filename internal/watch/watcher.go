// Package watch re-runs the analysis whenever a notes file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/log"
	"github.com/xolan/timesplit/internal/osutil"
)

// Result is delivered to the handler after every analysis run
type Result struct {
	Path   string
	Report *analyzer.Report
	Err    error
}

// Handler receives results on the watcher's goroutine
type Handler func(Result)

const (
	readRetries    = 10
	readRetryDelay = 50 * time.Millisecond
)

// Watcher watches a single file
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	logger   *log.Logger
}

// New creates a Watcher. Writes closer together than debounce collapse into
// one analysis run after the last write.
func New(path string, debounce time.Duration, handler Handler, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Discard()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		handler:  handler,
		logger:   logger.WithComponent("watch"),
	}
}

// Run analyzes the file once, then again after each write, until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	// Watch the directory so editors that replace the file on save are still seen
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.logger.Info("watching", log.FieldPath, w.path)
	w.analyze()

	var pending <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped", log.FieldPath, w.path)
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("file event", log.FieldPath, event.Name, "op", event.Op.String())

			if w.debounce <= 0 {
				w.analyze()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.analyze()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) analyze() {
	data, err := readLoop(w.path)
	if err != nil {
		w.logger.Error("read failed", log.FieldPath, w.path, "error", err)
		w.handler(Result{Path: w.path, Err: err})
		return
	}

	report, err := analyzer.Analyze(string(data))
	if err != nil {
		w.logger.Warn("analysis failed", log.FieldPath, w.path, "error", err)
	} else {
		w.logger.Info("analyzed", log.FieldPath, w.path, "entries", report.EntryCount, "minutes", report.TotalMinutes)
	}
	w.handler(Result{Path: w.path, Report: report, Err: err})
}

// readLoop retries while the file reads back empty, which happens when the
// event arrives between an editor's truncate and its write.
func readLoop(path string) ([]byte, error) {
	var data []byte
	for i := 0; i < readRetries; i++ {
		b, err := osutil.Provider.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		data = b
		if len(b) > 0 {
			return b, nil
		}
		time.Sleep(readRetryDelay)
	}
	return data, nil
}
