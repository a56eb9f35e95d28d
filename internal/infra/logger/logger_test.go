package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(root, ".phonebook", "logs", "phonebook.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("entry.committed", "phones", 2)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("expected JSON line: %v", err)
	}
	if rec["msg"] != "entry.committed" {
		t.Fatalf("expected msg entry.committed, got %v", rec["msg"])
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attr in debug mode")
	}
}

func TestSetup_FailureFallsBackToDiscard(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".phonebook")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Setup(Config{Root: root}); err == nil {
		t.Fatalf("expected Setup to fail when logs dir cannot be created")
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger not ready")
	}
	L().Info("dropped")
}
