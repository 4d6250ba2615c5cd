package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/glabrego/forkify-cli/internal/recipe"
	"github.com/glabrego/forkify-cli/internal/storage"
)

// AddBookmark appends rec to the bookmark set unless its id is already
// there, marks the open recipe when ids match, and persists.
func (s *Store) AddBookmark(ctx context.Context, rec recipe.Recipe) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if s.hasRecipe && s.recipe.ID == rec.ID {
		s.recipe.Bookmarked = true
	}
	if s.IsBookmarked(rec.ID) {
		s.log.Debug("bookmark exists", "id", rec.ID)
		return nil
	}
	bm := rec.Clone()
	bm.Bookmarked = true
	s.bookmarks = append(s.bookmarks, bm)
	s.log.Info("bookmark added", "id", rec.ID, "title", rec.Title)
	s.publish(EventBookmarks)
	return s.persist(ctx)
}

// DeleteBookmark removes the bookmark with id, clears the open recipe's
// flag when ids match, and persists. An unknown id is a no-op.
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	idx := s.bookmarkIndex(id)
	if idx < 0 {
		s.log.Debug("bookmark not found", "id", id)
		return nil
	}
	s.bookmarks = slices.Delete(s.bookmarks, idx, idx+1)
	if s.hasRecipe && s.recipe.ID == id {
		s.recipe.Bookmarked = false
	}
	s.log.Info("bookmark deleted", "id", id)
	s.publish(EventBookmarks)
	return s.persist(ctx)
}

// ToggleBookmark bookmarks or unbookmarks the open recipe and reports the
// new state.
func (s *Store) ToggleBookmark(ctx context.Context) (bool, error) {
	if !s.hasRecipe {
		return false, ErrNoRecipe
	}
	if s.recipe.Bookmarked {
		err := s.DeleteBookmark(ctx, s.recipe.ID)
		return s.recipe.Bookmarked, err
	}
	err := s.AddBookmark(ctx, s.recipe)
	return s.recipe.Bookmarked, err
}

func (s *Store) persist(ctx context.Context) error {
	if err := storage.SaveBookmarks(ctx, s.repo, s.bookmarks); err != nil {
		s.log.Error("persist bookmarks", "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
