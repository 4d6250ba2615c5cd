package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/glabrego/forkify-cli/internal/app"
	"github.com/glabrego/forkify-cli/internal/render/markup"
	"github.com/glabrego/forkify-cli/internal/tui/view"
)

// printRequest is what the command line asked for when the TUI is skipped.
type printRequest struct {
	Query    string
	Page     int
	RecipeID string
	Width    int
}

func (r printRequest) empty() bool {
	return r.Query == "" && r.RecipeID == ""
}

// runPrint loads what req names into store and writes the resulting views
// to w as text.
func runPrint(ctx context.Context, w io.Writer, store *app.Store, req printRequest) error {
	if req.empty() {
		return writeSection(w, "Bookmarks", markup.BookmarksView, markup.ListData{
			Items: markup.Summaries(store.Bookmarks()),
		}, "No bookmarks yet.", req.Width)
	}

	if req.Query != "" {
		if err := store.LoadSearchResults(ctx, req.Query); err != nil {
			return fmt.Errorf("search %q: %w", req.Query, err)
		}
		if req.Page > 1 {
			store.SearchResultsPage(req.Page)
		}
		search := store.Search()
		if err := writeSection(w, fmt.Sprintf("Results for %q", search.Query), markup.ResultsView, markup.ListData{
			Items: store.CurrentPage(),
		}, "No recipes found.", req.Width); err != nil {
			return err
		}
		if err := writeSection(w, "", markup.PaginationView, markup.PaginationData{
			Page:         search.Page,
			ResultsCount: len(search.Results),
			PerPage:      search.ResultsPerPage,
		}, "", req.Width); err != nil {
			return err
		}
	}

	if req.RecipeID != "" {
		if err := store.LoadRecipe(ctx, req.RecipeID); err != nil {
			return fmt.Errorf("load recipe %s: %w", req.RecipeID, err)
		}
		rec, _ := store.Recipe()
		if err := writeSection(w, "", markup.RecipeView, rec, "", req.Width); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(w io.Writer, title, viewName string, data any, emptyMessage string, width int) error {
	pane := view.NewPane(viewName, emptyMessage, "")
	if err := pane.Render(data); err != nil {
		return fmt.Errorf("render %s: %w", viewName, err)
	}
	lines := pane.Lines(width)
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
