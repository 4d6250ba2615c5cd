package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glabrego/forkify-cli/internal/recipe"
)

func sampleBookmarks() []recipe.Recipe {
	return []recipe.Recipe{
		{
			ID:          "a",
			Title:       "Pasta",
			Publisher:   "P1",
			SourceURL:   "https://example.com/a",
			Image:       "https://example.com/a.jpg",
			Servings:    4,
			CookingTime: 30,
			Ingredients: []recipe.Ingredient{
				{Quantity: recipe.Quantity(1.5), Unit: "cup", Description: "flour"},
				{Description: "salt"},
			},
			Bookmarked: true,
		},
		{ID: "b", Title: "Soup", Publisher: "P2", Servings: 2, Key: "uk", Bookmarked: true},
	}
}

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	out := make(map[string]Store)
	for _, backend := range []string{BackendSQLite, BackendBolt} {
		s, err := Open(context.Background(), backend, filepath.Join(t.TempDir(), "forkify-"+backend+".db"))
		if err != nil {
			t.Fatalf("Open(%s) returned error: %v", backend, err)
		}
		t.Cleanup(func() { _ = s.Close() })
		out[backend] = s
	}
	return out
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := s.Get(context.Background(), "missing")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if ok || value != nil {
				t.Fatalf("expected missing key, got ok=%v value=%q", ok, value)
			}
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Put(ctx, "k", []byte("one")); err != nil {
				t.Fatalf("Put returned error: %v", err)
			}
			if err := s.Put(ctx, "k", []byte("two")); err != nil {
				t.Fatalf("Put returned error: %v", err)
			}
			value, ok, err := s.Get(ctx, "k")
			if err != nil || !ok {
				t.Fatalf("Get returned ok=%v err=%v", ok, err)
			}
			if string(value) != "two" {
				t.Fatalf("expected overwritten value, got %q", value)
			}
		})
	}
}

func TestBookmarks_AbsentKeyIsEmptySet(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := LoadBookmarks(context.Background(), s)
			if err != nil {
				t.Fatalf("LoadBookmarks returned error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil set, got %#v", got)
			}
		})
	}
}

func TestBookmarks_RoundTripKeepsOrderAndNilQuantities(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleBookmarks()
			if err := SaveBookmarks(ctx, s, want); err != nil {
				t.Fatalf("SaveBookmarks returned error: %v", err)
			}
			got, err := LoadBookmarks(ctx, s)
			if err != nil {
				t.Fatalf("LoadBookmarks returned error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("bookmarks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookmarks_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "forkify.db")

	s, err := Open(ctx, BackendSQLite, path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := SaveBookmarks(ctx, s, sampleBookmarks()[:1]); err != nil {
		t.Fatalf("SaveBookmarks returned error: %v", err)
	}
	_ = s.Close()

	s, err = Open(ctx, BackendSQLite, path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	got, err := LoadBookmarks(ctx, s)
	if err != nil {
		t.Fatalf("LoadBookmarks returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" || !got[0].Bookmarked {
		t.Fatalf("unexpected bookmarks after reopen: %+v", got)
	}
}

func TestBookmarks_StoredJSONUsesRecipeFields(t *testing.T) {
	ctx := context.Background()
	s := openBackends(t)[BackendBolt]
	if err := SaveBookmarks(ctx, s, sampleBookmarks()[1:]); err != nil {
		t.Fatalf("SaveBookmarks returned error: %v", err)
	}
	raw, _, err := s.Get(ctx, BookmarksKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	want := `[{"id":"b","title":"Soup","publisher":"P2","sourceUrl":"","image":"","servings":2,"cookingTime":0,"ingredients":null,"key":"uk"}]`
	if string(raw) != want {
		t.Fatalf("unexpected stored json:\n got %s\nwant %s", raw, want)
	}
}

func TestBookmarks_CorruptValue(t *testing.T) {
	ctx := context.Background()
	s := openBackends(t)[BackendSQLite]
	if err := s.Put(ctx, BookmarksKey, []byte("{not json")); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if _, err := LoadBookmarks(ctx, s); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), "redis", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestOpen_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "forkify.db")
	if _, err := os.Stat(filepath.Dir(path)); err == nil {
		t.Fatal("expected directory to be missing")
	}
	if _, err := Open(context.Background(), BackendBolt, path); err == nil {
		t.Fatal("expected open error for missing directory")
	}
}

func TestCheckWritable(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := CheckWritable(ctx, s); err != nil {
				t.Fatalf("CheckWritable returned error: %v", err)
			}
			if _, ok, _ := s.Get(ctx, probeKey); !ok {
				t.Fatal("expected probe value to be written")
			}
		})
	}
}
