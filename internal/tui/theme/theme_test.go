package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderLabel_ByFocus(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	focused := th.RenderLabel(true, "Title")
	if !strings.Contains(focused, "\x1b[") {
		t.Fatalf("expected styled focused label, got %q", focused)
	}
	plain := th.RenderLabel(false, "Title")
	if !strings.Contains(plain, "\x1b[") {
		t.Fatalf("expected styled label, got %q", plain)
	}
	if focused == plain {
		t.Fatalf("expected focused and unfocused labels to differ")
	}
	if got := th.RenderLabel(true, ""); got != "" {
		t.Fatalf("expected empty label to stay empty, got %q", got)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()
	if got := th.RenderActiveLine(false, "row"); got != "row" {
		t.Fatalf("expected inactive line unchanged, got %q", got)
	}
	if got := th.RenderActiveLine(true, "row"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled active line, got %q", got)
	}
}
