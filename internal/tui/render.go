package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/forkify-cli/internal/pagination"
	"github.com/glabrego/forkify-cli/internal/tui/state"
	"github.com/glabrego/forkify-cli/internal/tui/view"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("forkify") + " " + m.theme.ModePill.Render(m.modeLabel()) + "\n")
	b.WriteString(view.Toolbar(m.mode, m.searching) + "\n")
	if m.searching {
		b.WriteString(m.theme.Prompt.Render("Search: ") + m.search.View() + "\n")
	}
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.theme.Section.Render("Help (? to close)") + "\n\n")
		b.WriteString(strings.Join(view.HelpLines(), "\n"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.body())
	}

	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	return b.String()
}

func (m Model) modeLabel() string {
	if m.showHelp {
		return "help"
	}
	return m.mode
}

func (m Model) body() string {
	switch m.mode {
	case view.ModeRecipe:
		return view.RenderScrolled(m.recipeLines(), m.detailTop, m.bodyHeight())
	case view.ModeBookmarks:
		return m.listBody(m.panes.bookmarks, m.bookmarksCursor, nil)
	case view.ModeUpload:
		if m.panes.upload.Surface() != view.SurfaceNone {
			return strings.Join(view.LeftPadLines(m.panes.upload.Lines(m.contentWidth()), 1), "\n") + "\n"
		}
		return strings.Join(m.form.Lines(m.theme), "\n") + "\n"
	default:
		if m.panes.results.Root() == nil {
			return m.theme.MetaValue.Render("Press / to search over 1,000,000 recipes.") + "\n"
		}
		return m.listBody(m.panes.results, m.resultsCursor, m.panes.pagination.Lines(m.contentWidth()))
	}
}

// listBody draws the rows around the cursor that fit the screen, then any
// trailing lines.
func (m Model) listBody(pane *view.Pane, cursor int, trailing []string) string {
	if pane.Surface() == view.SurfaceContent {
		view.MarkCursor(pane.Root(), cursor)
	}
	lines := pane.Lines(m.contentWidth())
	height := m.bodyHeight()
	if len(trailing) > 0 {
		height -= len(trailing) + 1
	}
	start, end := state.CenteredWindow(len(lines), cursor, max(1, height))
	var b strings.Builder
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(trailing) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(trailing, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) recipeLines() []string {
	lines := m.panes.recipe.Lines(m.contentWidth())
	if !m.showImage {
		return lines
	}
	rec, ok := m.store.Recipe()
	if !ok {
		return lines
	}
	var image []string
	switch {
	case m.imageLoading:
		image = []string{m.theme.MetaValue.Render("Loading image preview...")}
	case m.imageErr[rec.ID] != "":
		image = []string{m.theme.StateWarn.Render("Image preview unavailable: " + m.imageErr[rec.ID])}
	case m.imagePreview[rec.ID] != "":
		image = strings.Split(m.imagePreview[rec.ID], "\n")
	}
	if len(image) == 0 {
		return lines
	}
	return append(append(image, ""), lines...)
}

func (m Model) footer() string {
	search := m.store.Search()
	pages := pagination.PageCount(len(search.Results), search.ResultsPerPage)
	return view.Footer(m.mode, search.Query, search.Page, pages, len(search.Results), len(m.store.Bookmarks()), m.theme)
}

func (m Model) messagePanel() string {
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	line := view.Message(m.busy(), m.status, warning, m.theme)
	if m.busy() {
		line = m.spinner.View() + " " + line
	}
	return line
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return max(20, m.width-1)
	}
	return 100
}

func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 16
	}
	used := lipgloss.Height(m.messagePanel()) + 5
	if m.searching {
		used++
	}
	if h := m.height - used; h > 3 {
		return h
	}
	return 3
}
