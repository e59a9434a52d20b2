package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/config"
	"github.com/xolan/timesplit/internal/service"
)

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return setupTestDepsWithStdin(t, "")
}

func setupTestDepsWithStdin(t *testing.T, stdin string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()

	services := service.NewServicesWithPath(filepath.Join(tmpDir, "config.toml"), cfg)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(stdin),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Config:   cfg,
	}

	return deps, stdout, stderr, &exitCode
}

func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	cfg := config.DefaultConfig()

	// Create a directory where the config file should be
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatal(err)
	}

	deps, stdout, stderr, exitCode := setupTestDeps(t)
	deps.Services = service.NewServicesWithPath(configPath, cfg)
	return deps, stdout, stderr, exitCode
}

// syncBuffer is written by a watcher goroutine while the test reads it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeNotes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
