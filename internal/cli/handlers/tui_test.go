package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/xolan/timesplit/internal/service"
)

func TestTUI(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	var got *service.Services
	TUI(deps, func(s *service.Services) error {
		got = s
		return nil
	})

	if got != deps.Services {
		t.Error("expected the runner to receive the configured services")
	}
	if *exitCode != 0 || stderr.Len() != 0 {
		t.Errorf("unexpected failure: exit=%d stderr=%q", *exitCode, stderr.String())
	}
}

func TestTUI_Error(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	TUI(deps, func(*service.Services) error {
		return errors.New("could not open a new TTY")
	})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	for _, expected := range []string{"Error: Failed to run terminal UI", "Details: could not open a new TTY", "Hint:"} {
		if !strings.Contains(stderr.String(), expected) {
			t.Errorf("expected stderr to contain %q, got %q", expected, stderr.String())
		}
	}
}
