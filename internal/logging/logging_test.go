package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "forkify.log")
	if err := Init(path, "debug"); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	WithPrefix("store").Debug("bookmark added", "id", "abc")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"forkify started", "store", "bookmark added", "id=abc", "forkify shutting down"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log:\n%s", want, out)
		}
	}
}

func TestLevelHelpers_FollowInitLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forkify.log")
	if err := Init(path, "info"); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Debug("config loaded", "store", "bolt")
	Info("bookmarks ready", "count", 2)
	Warn("uploads disabled")
	Error("tui exited", "err", "boom")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"bookmarks ready", "count=2", "uploads disabled", "tui exited", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log:\n%s", want, out)
		}
	}
	if strings.Contains(out, "config loaded") {
		t.Fatalf("debug line written at info level:\n%s", out)
	}
}

func TestInit_BadLevel(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.WarnLevel)
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLoggerDiscardsBeforeInit(t *testing.T) {
	Close()
	Info("nothing to see")
	if Logger == nil {
		t.Fatal("expected non-nil logger")
	}
}
