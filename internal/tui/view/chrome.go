package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/forkify-cli/internal/tui/theme"
)

// Modes of the interactive client.
const (
	ModeResults   = "results"
	ModeRecipe    = "recipe"
	ModeBookmarks = "bookmarks"
	ModeUpload    = "upload"
)

func Toolbar(mode string, searching bool) string {
	if searching {
		return "enter search | esc cancel"
	}
	switch mode {
	case ModeRecipe:
		return "j/k scroll | +/- servings | b bookmark | o open | y copy | esc back | ? help"
	case ModeBookmarks:
		return "j/k move | enter open | d remove | esc back | ? help"
	case ModeUpload:
		return "tab/shift+tab field | ctrl+s upload | esc cancel"
	default:
		return "/ search | j/k move | enter open | [ ] page | B bookmarks | a add recipe | ? help | q quit"
	}
}

// Footer summarises the search and bookmark state.
func Footer(mode, query string, page, pages, results, bookmarks int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("mode") + " " + th.MetaValue.Render(mode),
	}
	if query != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q (%d)", query, results)))
		if pages > 0 {
			parts = append(parts, th.MetaLabel.Render("page")+" "+th.MetaValue.Render(fmt.Sprintf("%d/%d", page, pages)))
		}
	}
	parts = append(parts, th.MetaValue.Render(fmt.Sprintf("%d bookmarked", bookmarks)))
	return strings.Join(parts, " • ")
}

// Message is the status line: a warning wins over a status, loading is
// shown as the state.
func Message(loading bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	stateLabel := th.StateIdle.Render("state")
	main := "Ready"
	switch {
	case warning != "":
		state = "warning"
		stateLabel = th.StateWarn.Render("state")
		main = warning
	case loading:
		state = "loading"
		stateLabel = th.StateLoad.Render("state")
	}
	if warning == "" && status != "" {
		main = status
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}

func HelpLines() []string {
	return []string{
		"Search:",
		"  / type a query, enter to search, esc to cancel",
		"Results:",
		"  j/k or arrows move, enter opens the recipe, [ ] previous/next page",
		"Recipe:",
		"  +/- change servings, b toggle bookmark, o open source, y copy source URL",
		"Bookmarks:",
		"  B shows bookmarks, enter opens, d removes",
		"Add recipe:",
		"  a opens the form, tab moves between fields, ctrl+s uploads",
		"  ingredients use quantity,unit,description (quantity and unit may be empty)",
		"General:",
		"  esc back, ? help, q quit",
	}
}
