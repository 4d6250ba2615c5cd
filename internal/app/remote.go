package app

import (
	"context"

	"github.com/glabrego/forkify-cli/internal/recipe"
)

type RecipeRequest struct {
	ID  string
	gen uint64
}

type RecipeResult struct {
	Request RecipeRequest
	Recipe  recipe.Recipe
	Err     error
}

type SearchRequest struct {
	Query string
	gen   uint64
}

type SearchResult struct {
	Request SearchRequest
	Results []recipe.Summary
	Err     error
}

type UploadRequest struct {
	Recipe recipe.Recipe
	gen    uint64
}

type UploadResult struct {
	Request UploadRequest
	Recipe  recipe.Recipe
	Err     error
}

// NewRecipeRequest supersedes every recipe request issued before it.
func (s *Store) NewRecipeRequest(id string) RecipeRequest {
	s.recipeGen++
	return RecipeRequest{ID: id, gen: s.recipeGen}
}

func (s *Store) FetchRecipe(ctx context.Context, req RecipeRequest) RecipeResult {
	rec, err := s.client.GetRecipe(ctx, req.ID)
	return RecipeResult{Request: req, Recipe: rec, Err: err}
}

// ApplyRecipe installs a fetched recipe. A fetch error is returned as is
// and leaves the previous recipe in place.
func (s *Store) ApplyRecipe(res RecipeResult) error {
	if res.Request.gen != s.recipeGen {
		s.log.Debug("discard stale recipe", "id", res.Request.ID)
		return ErrStale
	}
	if res.Err != nil {
		s.log.Warn("load recipe failed", "id", res.Request.ID, "err", res.Err)
		return res.Err
	}
	rec := res.Recipe
	rec.Bookmarked = s.IsBookmarked(rec.ID)
	s.recipe = rec
	s.hasRecipe = true
	s.log.Debug("recipe loaded", "id", rec.ID)
	s.publish(EventRecipe)
	return nil
}

func (s *Store) LoadRecipe(ctx context.Context, id string) error {
	req := s.NewRecipeRequest(id)
	return s.ApplyRecipe(s.FetchRecipe(ctx, req))
}

func (s *Store) NewSearchRequest(query string) SearchRequest {
	s.searchGen++
	return SearchRequest{Query: query, gen: s.searchGen}
}

func (s *Store) FetchSearch(ctx context.Context, req SearchRequest) SearchResult {
	results, err := s.client.SearchRecipes(ctx, req.Query)
	return SearchResult{Request: req, Results: results, Err: err}
}

// ApplySearch replaces the search state and resets the page to 1.
func (s *Store) ApplySearch(res SearchResult) error {
	if res.Request.gen != s.searchGen {
		s.log.Debug("discard stale search", "query", res.Request.Query)
		return ErrStale
	}
	if res.Err != nil {
		s.log.Warn("search failed", "query", res.Request.Query, "err", res.Err)
		return res.Err
	}
	results := res.Results
	if results == nil {
		results = []recipe.Summary{}
	}
	s.search.Query = res.Request.Query
	s.search.Results = results
	s.search.Page = 1
	s.log.Debug("search loaded", "query", res.Request.Query, "results", len(results))
	s.publish(EventSearch)
	return nil
}

func (s *Store) LoadSearchResults(ctx context.Context, query string) error {
	req := s.NewSearchRequest(query)
	return s.ApplySearch(s.FetchSearch(ctx, req))
}

// NewUploadRequest validates the form. A malformed form yields a
// *recipe.ValidationError and no request.
func (s *Store) NewUploadRequest(form recipe.Form) (UploadRequest, error) {
	rec, err := form.Build()
	if err != nil {
		return UploadRequest{}, err
	}
	s.uploadGen++
	return UploadRequest{Recipe: rec, gen: s.uploadGen}, nil
}

func (s *Store) FetchUpload(ctx context.Context, req UploadRequest) UploadResult {
	rec, err := s.client.UploadRecipe(ctx, req.Recipe)
	return UploadResult{Request: req, Recipe: rec, Err: err}
}

// ApplyUpload opens the uploaded recipe and bookmarks it. It also
// supersedes any recipe load still in flight.
func (s *Store) ApplyUpload(ctx context.Context, res UploadResult) error {
	if res.Request.gen != s.uploadGen {
		return ErrStale
	}
	if res.Err != nil {
		s.log.Warn("upload failed", "title", res.Request.Recipe.Title, "err", res.Err)
		return res.Err
	}
	s.recipeGen++
	s.recipe = res.Recipe
	s.recipe.Bookmarked = false
	s.hasRecipe = true
	s.log.Info("recipe uploaded", "id", res.Recipe.ID)
	err := s.AddBookmark(ctx, s.recipe)
	s.publish(EventRecipe)
	return err
}

func (s *Store) UploadRecipe(ctx context.Context, form recipe.Form) error {
	req, err := s.NewUploadRequest(form)
	if err != nil {
		return err
	}
	return s.ApplyUpload(ctx, s.FetchUpload(ctx, req))
}
