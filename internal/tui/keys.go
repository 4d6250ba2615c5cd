package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/forkify-cli/internal/tui/state"
	"github.com/glabrego/forkify-cli/internal/tui/view"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.mode == view.ModeUpload {
		return m.handleFormKey(msg)
	}

	if key == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		switch key {
		case "esc":
			m.showHelp = false
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "B":
		m.mode = view.ModeBookmarks
		m.bookmarksCursor = state.ClampCursor(m.bookmarksCursor, len(view.RowIDs(m.panes.bookmarks.Root())))
		return m, nil
	case "a":
		if !m.uploadEnabled {
			return m.setStatus("Set FORKIFY_API_KEY to upload recipes", 4*time.Second)
		}
		if m.mode != view.ModeUpload {
			m.returnMode = m.mode
		}
		m.mode = view.ModeUpload
		return m, textinput.Blink
	}

	switch m.mode {
	case view.ModeRecipe:
		return m.handleRecipeKey(key)
	default:
		return m.handleListKey(key)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.search.Value())
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if query == "" {
			return m, nil
		}
		return m.startSearch(query)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.panes.upload.Surface() {
	case view.SurfaceSpinner:
		return m, nil
	case view.SurfaceMessage:
		if msg.String() == "esc" {
			m.resetForm()
			m.mode = view.ModeRecipe
			m.detailTop = 0
		}
		return m, nil
	case view.SurfaceError:
		m.panes.upload.Clear()
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = m.returnMode
		if m.mode == view.ModeUpload {
			m.mode = view.ModeResults
		}
		return m, nil
	case "tab", "down":
		cmd := m.form.Next()
		return m, cmd
	case "shift+tab", "up":
		cmd := m.form.Prev()
		return m, cmd
	case "ctrl+s":
		return m.submitUpload()
	}
	cmd := m.form.Update(msg)
	return m, cmd
}

func (m Model) handleRecipeKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "backspace", "h", "left":
		m.mode = m.returnMode
		if m.mode == view.ModeRecipe || m.mode == view.ModeUpload {
			m.mode = view.ModeResults
		}
		m.detailTop = 0
		return m, nil
	case "up", "k":
		if m.detailTop > 0 {
			m.detailTop--
		}
		return m, nil
	case "down", "j":
		if m.detailTop < view.ScrollMaxTop(len(m.recipeLines()), m.bodyHeight()) {
			m.detailTop++
		}
		return m, nil
	case "+", "=", "-":
		dec, inc, ok := view.ServingsTargets(m.panes.recipe.Root())
		if !ok {
			return m, nil
		}
		target := inc
		if key == "-" {
			target = dec
		}
		if target < 1 {
			return m, nil
		}
		m.store.UpdateServings(target)
		return m, nil
	case "b":
		return m.toggleBookmark()
	case "o":
		return m.openSourceURL(false)
	case "y":
		return m.openSourceURL(true)
	case "i":
		return m.toggleImagePreview()
	}
	return m, nil
}

// handleListKey drives the result and bookmark lists.
func (m Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	pane := m.panes.results
	cursor := &m.resultsCursor
	if m.mode == view.ModeBookmarks {
		pane = m.panes.bookmarks
		cursor = &m.bookmarksCursor
	}
	ids := view.RowIDs(pane.Root())

	switch key {
	case "esc":
		if m.mode == view.ModeBookmarks {
			m.mode = view.ModeResults
		}
		return m, nil
	case "up", "k":
		*cursor = state.ClampCursor(*cursor-1, len(ids))
		return m, nil
	case "down", "j":
		*cursor = state.ClampCursor(*cursor+1, len(ids))
		return m, nil
	case "pgup", "ctrl+b":
		*cursor = state.ClampCursor(*cursor-state.PageStep(m.height, m.status != ""), len(ids))
		return m, nil
	case "pgdown", "ctrl+f":
		*cursor = state.ClampCursor(*cursor+state.PageStep(m.height, m.status != ""), len(ids))
		return m, nil
	case "g":
		*cursor = 0
		return m, nil
	case "G":
		*cursor = state.ClampCursor(len(ids)-1, len(ids))
		return m, nil
	case "enter", "l", "right":
		if len(ids) == 0 {
			return m, nil
		}
		return m.openRecipe(ids[state.ClampCursor(*cursor, len(ids))])
	case "tab":
		if _, ok := m.store.Recipe(); ok {
			m.returnMode = m.mode
			m.mode = view.ModeRecipe
		}
		return m, nil
	}

	if m.mode == view.ModeBookmarks {
		if key == "d" {
			return m.deleteBookmarkAtCursor()
		}
		return m, nil
	}

	switch key {
	case "[", "]":
		prev, next := view.PageTargets(m.panes.pagination.Root())
		target := next
		if key == "[" {
			target = prev
		}
		if target == 0 {
			return m, nil
		}
		m.store.SearchResultsPage(target)
		m.resultsCursor = 0
		return m, nil
	}
	return m, nil
}
