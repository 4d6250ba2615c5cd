package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/glabrego/forkify-cli/internal/app"
	"github.com/glabrego/forkify-cli/internal/config"
	"github.com/glabrego/forkify-cli/internal/forkify"
	"github.com/glabrego/forkify-cli/internal/logging"
	"github.com/glabrego/forkify-cli/internal/storage"
	"github.com/glabrego/forkify-cli/internal/tui"
)

func main() {
	query := flag.String("search", "", "search recipes on startup")
	page := flag.Int("page", 1, "results page to show with -search")
	recipeID := flag.String("recipe", "", "open the recipe with this id on startup")
	printOnly := flag.Bool("print", false, "print the requested views instead of starting the TUI")
	width := flag.Int("width", 100, "line width in print mode")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := logging.Init(cfg.LogPath, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled (%v)\n", err)
	}
	defer logging.Close()
	logging.Debug("config loaded", "store", cfg.Store, "db", cfg.DBPath, "per_page", cfg.ResultsPerPage, "rate", cfg.RatePerSec)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	repo, err := storage.Open(ctx, cfg.Store, cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	if err := storage.CheckWritable(ctx, repo); err != nil {
		log.Fatalf("storage write check failed (%v). Verify FORKIFY_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	client := forkify.NewClient(cfg.APIBaseURL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout}, forkify.NewLimiter(cfg.RatePerSec))
	store := app.NewStore(client, repo, app.Options{
		ResultsPerPage: cfg.ResultsPerPage,
		Logger:         logging.WithPrefix("store"),
	})
	if err := store.Init(ctx); err != nil {
		log.Fatalf("cannot load bookmarks: %v", err)
	}
	logging.Info("bookmarks ready", "count", len(store.Bookmarks()))
	if !cfg.CanUpload() {
		logging.Warn("FORKIFY_API_KEY not set, uploads disabled")
	}

	if *printOnly || !isatty.IsTerminal(os.Stdout.Fd()) {
		printCtx, printCancel := context.WithTimeout(context.Background(), 2*cfg.Timeout)
		defer printCancel()
		err := runPrint(printCtx, os.Stdout, store, printRequest{
			Query:    *query,
			Page:     *page,
			RecipeID: *recipeID,
			Width:    *width,
		})
		if err != nil {
			logging.Error("print failed", "err", err)
			log.Fatalf("%v", err)
		}
		return
	}

	model := tui.NewModel(store, tui.Options{
		Timeout:         cfg.Timeout,
		Logger:          logging.WithPrefix("tui"),
		UploadEnabled:   cfg.CanUpload(),
		InitialQuery:    *query,
		InitialRecipeID: *recipeID,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("tui exited", "err", err)
		log.Fatalf("tui error: %v", err)
	}
	logging.Info("tui closed", "bookmarks", len(store.Bookmarks()))
}
