// Package storage persists the bookmark set in a local key-value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glabrego/forkify-cli/internal/recipe"
)

const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"

	BookmarksKey = "bookmarks"
)

type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store is a KV backend with a lifecycle.
type Store interface {
	KV
	Init(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*Repository)(nil)
	_ Store = (*BoltStore)(nil)
)

// Open opens and initialises the named backend at path.
func Open(ctx context.Context, backend, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch backend {
	case "", BackendSQLite:
		s, err = NewRepository(path)
	case BackendBolt:
		s, err = NewBoltStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("init %s store: %w", backend, err)
	}
	return s, nil
}

// LoadBookmarks reads the bookmark set. An absent key yields an empty set.
func LoadBookmarks(ctx context.Context, kv KV) ([]recipe.Recipe, error) {
	raw, ok, err := kv.Get(ctx, BookmarksKey)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	if !ok || len(raw) == 0 {
		return []recipe.Recipe{}, nil
	}
	var bookmarks []recipe.Recipe
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []recipe.Recipe{}
	}
	for i := range bookmarks {
		bookmarks[i].Bookmarked = true
	}
	return bookmarks, nil
}

// SaveBookmarks overwrites the stored bookmark set.
func SaveBookmarks(ctx context.Context, kv KV, bookmarks []recipe.Recipe) error {
	if bookmarks == nil {
		bookmarks = []recipe.Recipe{}
	}
	raw, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := kv.Put(ctx, BookmarksKey, raw); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

const probeKey = "_probe"

// CheckWritable writes a probe value so an unwritable database fails at
// startup rather than on the first bookmark.
func CheckWritable(ctx context.Context, kv KV) error {
	if err := kv.Put(ctx, probeKey, []byte("ok")); err != nil {
		return fmt.Errorf("check writable: %w", err)
	}
	return nil
}
