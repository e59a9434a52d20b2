package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/timesplit/internal/log"
)

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, got %q", want, buf.String())
}

func TestWatch_PrintsReports(t *testing.T) {
	deps, _, _, exitCode := setupTestDeps(t)
	stdout := &syncBuffer{}
	stderr := &syncBuffer{}
	deps.Stdout = stdout
	deps.Stderr = stderr
	deps.Config.WatchDebounce = "10ms"

	path := writeNotes(t, "[30 mins] Team meeting\n")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Watch(ctx, deps, log.Discard(), WatchOptions{Path: path})
		close(done)
	}()

	waitFor(t, stdout, "Time by category (1 entry, 30m):")

	if err := os.WriteFile(path, []byte("no markers now\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, stderr, "Error: No valid time entries found.")

	if err := os.WriteFile(path, []byte("[30 mins] Team meeting\n[30 mins] Write docs\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, stdout, "Time by category (2 entries, 1h):")

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	Watch(context.Background(), deps, nil, WatchOptions{Path: filepath.Join(t.TempDir(), "nope", "notes.txt")})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error: Failed to watch file") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestWatch_InvalidDebounce(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)
	deps.Config.WatchDebounce = "soon"

	Watch(context.Background(), deps, nil, WatchOptions{Path: "notes.txt"})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid watch_debounce") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}
