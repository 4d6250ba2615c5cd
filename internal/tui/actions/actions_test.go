package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glabrego/forkify-cli/internal/app"
	"github.com/glabrego/forkify-cli/internal/recipe"
)

type fakeService struct {
	recipe    recipe.Recipe
	results   []recipe.Summary
	uploaded  recipe.Recipe
	err       error
	deadlines []time.Time
}

func (f *fakeService) record(ctx context.Context) {
	if dl, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, dl)
	}
}

func (f *fakeService) FetchRecipe(ctx context.Context, req app.RecipeRequest) app.RecipeResult {
	f.record(ctx)
	return app.RecipeResult{Request: req, Recipe: f.recipe, Err: f.err}
}

func (f *fakeService) FetchSearch(ctx context.Context, req app.SearchRequest) app.SearchResult {
	f.record(ctx)
	return app.SearchResult{Request: req, Results: f.results, Err: f.err}
}

func (f *fakeService) FetchUpload(ctx context.Context, req app.UploadRequest) app.UploadResult {
	f.record(ctx)
	return app.UploadResult{Request: req, Recipe: f.uploaded, Err: f.err}
}

func TestLoadRecipeCmd(t *testing.T) {
	svc := &fakeService{recipe: recipe.Recipe{ID: "r1", Title: "Pasta"}}
	start := time.Now()
	msg := LoadRecipeCmd(svc, app.RecipeRequest{ID: "r1"}, 3*time.Second)()
	loaded, ok := msg.(RecipeLoadedMsg)
	if !ok {
		t.Fatalf("expected RecipeLoadedMsg, got %T", msg)
	}
	if loaded.Result.Request.ID != "r1" || loaded.Result.Recipe.Title != "Pasta" {
		t.Fatalf("unexpected payload: %+v", loaded)
	}
	if len(svc.deadlines) != 1 {
		t.Fatal("expected recipe context deadline to be set")
	}
	if got := svc.deadlines[0].Sub(start); got > 4*time.Second {
		t.Fatalf("expected deadline near 3s, got %s", got)
	}
}

func TestSearchCmd_DefaultTimeout(t *testing.T) {
	svc := &fakeService{results: []recipe.Summary{{ID: "a"}, {ID: "b"}}}
	start := time.Now()
	msg := SearchCmd(svc, app.SearchRequest{Query: "pizza"}, 0)()
	loaded, ok := msg.(SearchLoadedMsg)
	if !ok {
		t.Fatalf("expected SearchLoadedMsg, got %T", msg)
	}
	if loaded.Result.Request.Query != "pizza" || len(loaded.Result.Results) != 2 {
		t.Fatalf("unexpected payload: %+v", loaded)
	}
	if len(svc.deadlines) != 1 || svc.deadlines[0].Sub(start) < DefaultTimeout-time.Second {
		t.Fatalf("expected default deadline, got %v", svc.deadlines)
	}
}

func TestUploadCmd(t *testing.T) {
	svc := &fakeService{uploaded: recipe.Recipe{ID: "new", Key: "k"}}
	msg := UploadCmd(svc, app.UploadRequest{Recipe: recipe.Recipe{Title: "Mine"}}, time.Second)()
	done, ok := msg.(UploadDoneMsg)
	if !ok {
		t.Fatalf("expected UploadDoneMsg, got %T", msg)
	}
	if done.Result.Recipe.ID != "new" || done.Result.Request.Recipe.Title != "Mine" {
		t.Fatalf("unexpected payload: %+v", done)
	}
}

func TestCmds_CarryErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{err: boom}

	if msg := LoadRecipeCmd(svc, app.RecipeRequest{ID: "x"}, time.Second)().(RecipeLoadedMsg); !errors.Is(msg.Result.Err, boom) {
		t.Fatalf("expected recipe error, got %v", msg.Result.Err)
	}
	if msg := SearchCmd(svc, app.SearchRequest{Query: "x"}, time.Second)().(SearchLoadedMsg); !errors.Is(msg.Result.Err, boom) {
		t.Fatalf("expected search error, got %v", msg.Result.Err)
	}
	if msg := UploadCmd(svc, app.UploadRequest{}, time.Second)().(UploadDoneMsg); !errors.Is(msg.Result.Err, boom) {
		t.Fatalf("expected upload error, got %v", msg.Result.Err)
	}
}

func TestOpenURLCmd_Fallbacks(t *testing.T) {
	msg := OpenURLCmd("https://example.com",
		func(string) error { return nil },
		func(string) error { return nil },
	)()
	success, ok := msg.(OpenURLSuccessMsg)
	if !ok || !success.Opened {
		t.Fatalf("expected opened success, got %T %+v", msg, success)
	}

	msg = OpenURLCmd("https://example.com",
		func(string) error { return errors.New("open failed") },
		func(string) error { return nil },
	)()
	success, ok = msg.(OpenURLSuccessMsg)
	if !ok || success.Opened {
		t.Fatalf("expected copy fallback success, got %T %+v", msg, success)
	}

	msg = OpenURLCmd("https://example.com",
		func(string) error { return errors.New("open failed") },
		func(string) error { return errors.New("copy failed") },
	)()
	if _, ok := msg.(OpenURLErrorMsg); !ok {
		t.Fatalf("expected OpenURLErrorMsg, got %T", msg)
	}
}

func TestCopyURLCmd(t *testing.T) {
	msg := CopyURLCmd("https://example.com", func(string) error { return nil })()
	if _, ok := msg.(OpenURLSuccessMsg); !ok {
		t.Fatalf("expected OpenURLSuccessMsg, got %T", msg)
	}
	msg = CopyURLCmd("https://example.com", func(string) error { return errors.New("copy failed") })()
	if _, ok := msg.(OpenURLErrorMsg); !ok {
		t.Fatalf("expected OpenURLErrorMsg, got %T", msg)
	}
}

func TestImagePreviewCmd(t *testing.T) {
	var gotURL string
	var gotWidth int
	render := func(ctx context.Context, url string, width int) (string, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected preview context deadline to be set")
		}
		gotURL, gotWidth = url, width
		return "##", nil
	}
	msg := ImagePreviewCmd("r1", "https://example.com/a.jpg", 60, render, time.Second)()
	preview, ok := msg.(ImagePreviewMsg)
	if !ok {
		t.Fatalf("expected ImagePreviewMsg, got %T", msg)
	}
	if preview.RecipeID != "r1" || preview.Preview != "##" || preview.Err != nil {
		t.Fatalf("unexpected payload: %+v", preview)
	}
	if gotURL != "https://example.com/a.jpg" || gotWidth != 60 {
		t.Fatalf("unexpected render args: %q %d", gotURL, gotWidth)
	}

	msg = ImagePreviewCmd("r1", "x", 60, nil, time.Second)()
	if preview := msg.(ImagePreviewMsg); preview.Err == nil {
		t.Fatal("expected error without a renderer")
	}
}
