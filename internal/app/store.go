// Package app holds the application state: the open recipe, the current
// search and the bookmark set, with the operations that mutate them.
//
// A Store is owned by a single goroutine. Remote operations are split so
// that only the network call leaves that goroutine: NewXRequest and ApplyX
// run on the owner, FetchX may run anywhere because it only touches the
// client.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/glabrego/forkify-cli/internal/logging"
	"github.com/glabrego/forkify-cli/internal/pagination"
	"github.com/glabrego/forkify-cli/internal/recipe"
	"github.com/glabrego/forkify-cli/internal/storage"
)

const DefaultResultsPerPage = 10

var (
	// ErrStale is returned by the Apply methods for a response that a later
	// request superseded. The state is left untouched.
	ErrStale = errors.New("stale response")

	ErrNotInitialized = errors.New("store not initialized")
	ErrNoRecipe       = errors.New("no recipe loaded")

	// ErrPersist marks bookmark changes that were applied in memory but could
	// not be written to the store.
	ErrPersist = errors.New("bookmarks not saved")
)

type RecipeClient interface {
	GetRecipe(ctx context.Context, id string) (recipe.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]recipe.Summary, error)
	UploadRecipe(ctx context.Context, rec recipe.Recipe) (recipe.Recipe, error)
}

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// SearchState is the current query, its results and the visible page.
type SearchState struct {
	Query          string
	Results        []recipe.Summary
	Page           int
	ResultsPerPage int
}

type Options struct {
	ResultsPerPage int
	Logger         *log.Logger
}

type Store struct {
	client RecipeClient
	repo   Repository
	log    *log.Logger

	recipe    recipe.Recipe
	hasRecipe bool
	search    SearchState
	bookmarks []recipe.Recipe

	initialized bool
	handlers    map[Event][]Handler

	recipeGen uint64
	searchGen uint64
	uploadGen uint64
}

func NewStore(client RecipeClient, repo Repository, opts Options) *Store {
	perPage := opts.ResultsPerPage
	if perPage < 1 {
		perPage = DefaultResultsPerPage
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		client:    client,
		repo:      repo,
		log:       logger,
		search:    SearchState{Page: 1, ResultsPerPage: perPage},
		bookmarks: []recipe.Recipe{},
		handlers:  make(map[Event][]Handler),
	}
}

// Init loads the persisted bookmark set. It must run before any bookmark
// mutation.
func (s *Store) Init(ctx context.Context) error {
	bookmarks, err := storage.LoadBookmarks(ctx, s.repo)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	s.bookmarks = bookmarks
	s.initialized = true
	s.log.Debug("bookmarks loaded", "count", len(bookmarks))
	s.publish(EventBookmarks)
	return nil
}

// Recipe returns a copy of the open recipe.
func (s *Store) Recipe() (recipe.Recipe, bool) {
	if !s.hasRecipe {
		return recipe.Recipe{}, false
	}
	return s.recipe.Clone(), true
}

// ActiveID is the id of the open recipe, or "".
func (s *Store) ActiveID() string {
	if !s.hasRecipe {
		return ""
	}
	return s.recipe.ID
}

func (s *Store) Search() SearchState {
	out := s.search
	out.Results = slices.Clone(s.search.Results)
	return out
}

// Bookmarks returns the bookmark set in insertion order.
func (s *Store) Bookmarks() []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		out = append(out, b.Clone())
	}
	return out
}

func (s *Store) IsBookmarked(id string) bool {
	return s.bookmarkIndex(id) >= 0
}

func (s *Store) bookmarkIndex(id string) int {
	return slices.IndexFunc(s.bookmarks, func(b recipe.Recipe) bool { return b.ID == id })
}

// SearchResultsPage moves to page, pulled into the valid range, and returns
// the results visible on it.
func (s *Store) SearchResultsPage(page int) []recipe.Summary {
	s.search.Page = pagination.Clamp(page, len(s.search.Results), s.search.ResultsPerPage)
	s.publish(EventPage)
	return s.CurrentPage()
}

// CurrentPage returns the results visible on the current page.
func (s *Store) CurrentPage() []recipe.Summary {
	return pagination.Window(s.search.Results, s.search.Page, s.search.ResultsPerPage)
}

// UpdateServings rescales the open recipe's quantities to n servings.
// Non-positive n and a missing recipe are ignored.
func (s *Store) UpdateServings(n int) {
	if n < 1 || !s.hasRecipe || n == s.recipe.Servings {
		return
	}
	recipe.ScaleIngredients(s.recipe.Ingredients, s.recipe.Servings, n)
	s.recipe.Servings = n
	s.publish(EventServings)
}
