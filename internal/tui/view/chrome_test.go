package view

import (
	"regexp"
	"strings"
	"testing"

	tuitheme "github.com/glabrego/forkify-cli/internal/tui/theme"
)

var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiStrip.ReplaceAllString(s, "")
}

func TestToolbar(t *testing.T) {
	if got := Toolbar(ModeResults, false); !strings.Contains(got, "/ search") {
		t.Fatalf("unexpected results toolbar: %q", got)
	}
	if got := Toolbar(ModeRecipe, false); !strings.Contains(got, "+/- servings") {
		t.Fatalf("unexpected recipe toolbar: %q", got)
	}
	if got := Toolbar(ModeUpload, false); !strings.Contains(got, "ctrl+s upload") {
		t.Fatalf("unexpected upload toolbar: %q", got)
	}
	if got := Toolbar(ModeRecipe, true); got != "enter search | esc cancel" {
		t.Fatalf("unexpected search toolbar: %q", got)
	}
}

func TestFooter(t *testing.T) {
	th := tuitheme.Default()
	got := stripANSI(Footer(ModeResults, "pizza", 2, 3, 25, 4, th))
	for _, want := range []string{"mode results", `search "pizza" (25)`, "page 2/3", "4 bookmarked"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in footer, got %q", want, got)
		}
	}
	if got := stripANSI(Footer(ModeBookmarks, "", 1, 0, 0, 0, th)); strings.Contains(got, "search") {
		t.Fatalf("expected no search part without query, got %q", got)
	}
}

func TestMessage(t *testing.T) {
	th := tuitheme.Default()
	if got := stripANSI(Message(false, "", "", th)); got != "state: idle | Ready" {
		t.Fatalf("unexpected idle message: %q", got)
	}
	if got := stripANSI(Message(true, "Searching...", "", th)); got != "state: loading | Searching..." {
		t.Fatalf("unexpected loading message: %q", got)
	}
	if got := stripANSI(Message(true, "Searching...", "boom", th)); got != "state: warning | boom" {
		t.Fatalf("unexpected warning message: %q", got)
	}
}
