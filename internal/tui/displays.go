package tui

import (
	"github.com/charmbracelet/log"

	"github.com/glabrego/forkify-cli/internal/app"
	"github.com/glabrego/forkify-cli/internal/render/markup"
	"github.com/glabrego/forkify-cli/internal/tui/view"
)

const (
	recipeErrorMessage    = "We could not find that recipe. Please try another one!"
	recipeMessage         = "Start by searching for a recipe or an ingredient. Have fun!"
	resultsErrorMessage   = "No recipes found for your query! Please try again ;)"
	bookmarksErrorMessage = "No bookmarks yet. Find a nice recipe and bookmark it ;)"
	uploadMessage         = "Recipe was successfully uploaded :)"
)

// displays keeps one pane per view in step with the store. Every handler
// runs on the program goroutine, inside the Update call that mutated the
// store.
type displays struct {
	store *app.Store
	log   *log.Logger

	recipe     *view.Pane
	results    *view.Pane
	bookmarks  *view.Pane
	pagination *view.Pane
	upload     *view.Pane
}

func newDisplays(store *app.Store, logger *log.Logger) *displays {
	d := &displays{
		store:      store,
		log:        logger,
		recipe:     view.NewPane(markup.RecipeView, recipeErrorMessage, recipeMessage),
		results:    view.NewPane(markup.ResultsView, resultsErrorMessage, ""),
		bookmarks:  view.NewPane(markup.BookmarksView, bookmarksErrorMessage, ""),
		pagination: view.NewPane(markup.PaginationView, "", ""),
		upload:     view.NewPane(markup.MessageView, "", uploadMessage),
	}
	store.Subscribe(app.EventRecipe, d.onRecipe)
	store.Subscribe(app.EventServings, d.onServings)
	store.Subscribe(app.EventSearch, d.onResults)
	store.Subscribe(app.EventPage, d.onResults)
	store.Subscribe(app.EventBookmarks, d.onBookmarks)

	d.check(d.recipe.RenderMessage(""))
	d.onBookmarks(app.EventBookmarks)
	if rec, ok := store.Recipe(); ok {
		d.check(d.recipe.Render(rec))
	}
	return d
}

func (d *displays) onRecipe(app.Event) {
	rec, ok := d.store.Recipe()
	if !ok {
		return
	}
	d.check(d.recipe.Render(rec))
	d.markActive()
}

func (d *displays) onServings(app.Event) {
	rec, ok := d.store.Recipe()
	if !ok {
		return
	}
	muts, err := d.recipe.Update(rec)
	d.check(err)
	d.log.Debug("servings view updated", "servings", rec.Servings, "mutations", len(muts))
}

// onResults redraws the result rows and the pagination buttons; a new
// search and a page change both replace the visible rows.
func (d *displays) onResults(app.Event) {
	d.check(d.results.Render(d.resultsData()))
	search := d.store.Search()
	d.check(d.pagination.Render(markup.PaginationData{
		Page:         search.Page,
		ResultsCount: len(search.Results),
		PerPage:      search.ResultsPerPage,
	}))
}

func (d *displays) onBookmarks(app.Event) {
	d.check(d.bookmarks.Render(d.bookmarksData()))
	if d.recipe.Surface() != view.SurfaceContent {
		return
	}
	if rec, ok := d.store.Recipe(); ok {
		_, err := d.recipe.Update(rec)
		d.check(err)
	}
}

// markActive moves the open-recipe highlight in both lists without
// rebuilding them.
func (d *displays) markActive() {
	if d.results.Surface() == view.SurfaceContent {
		_, err := d.results.Update(d.resultsData())
		d.check(err)
	}
	if d.bookmarks.Surface() == view.SurfaceContent {
		_, err := d.bookmarks.Update(d.bookmarksData())
		d.check(err)
	}
}

func (d *displays) resultsData() markup.ListData {
	return markup.ListData{Items: d.store.CurrentPage(), ActiveID: d.store.ActiveID()}
}

func (d *displays) bookmarksData() markup.ListData {
	return markup.ListData{Items: markup.Summaries(d.store.Bookmarks()), ActiveID: d.store.ActiveID()}
}

func (d *displays) check(err error) {
	if err != nil {
		d.log.Error("render view", "err", err)
	}
}
