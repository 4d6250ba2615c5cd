package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/forkify-cli/internal/app"
)

// Service runs the network half of the store's remote operations. The
// requests are issued and the results applied on the program goroutine.
type Service interface {
	FetchRecipe(ctx context.Context, req app.RecipeRequest) app.RecipeResult
	FetchSearch(ctx context.Context, req app.SearchRequest) app.SearchResult
	FetchUpload(ctx context.Context, req app.UploadRequest) app.UploadResult
}

// DefaultTimeout bounds a command that was given no timeout.
const DefaultTimeout = 10 * time.Second

// CloseFormDelay is how long the upload confirmation stays on screen.
const CloseFormDelay = 2500 * time.Millisecond

type RecipeLoadedMsg struct {
	Result   app.RecipeResult
	Duration time.Duration
}

type SearchLoadedMsg struct {
	Result   app.SearchResult
	Duration time.Duration
}

type UploadDoneMsg struct {
	Result   app.UploadResult
	Duration time.Duration
}

// CloseFormMsg closes the upload form after a successful upload.
type CloseFormMsg struct{}

type ImagePreviewMsg struct {
	RecipeID string
	Preview  string
	Err      error
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

func LoadRecipeCmd(service Service, req app.RecipeRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), orDefault(timeout))
		defer cancel()
		start := time.Now()

		res := service.FetchRecipe(ctx, req)
		return RecipeLoadedMsg{Result: res, Duration: time.Since(start)}
	}
}

func SearchCmd(service Service, req app.SearchRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), orDefault(timeout))
		defer cancel()
		start := time.Now()

		res := service.FetchSearch(ctx, req)
		return SearchLoadedMsg{Result: res, Duration: time.Since(start)}
	}
}

func UploadCmd(service Service, req app.UploadRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), orDefault(timeout))
		defer cancel()
		start := time.Now()

		res := service.FetchUpload(ctx, req)
		return UploadDoneMsg{Result: res, Duration: time.Since(start)}
	}
}

func CloseFormCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CloseFormMsg{}
	})
}

// ImagePreviewFunc draws the image at url for a terminal width.
type ImagePreviewFunc func(ctx context.Context, url string, width int) (string, error)

func ImagePreviewCmd(recipeID, url string, width int, renderFn ImagePreviewFunc, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if renderFn == nil {
			return ImagePreviewMsg{RecipeID: recipeID, Err: fmt.Errorf("image preview unavailable")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), orDefault(timeout))
		defer cancel()

		preview, err := renderFn(ctx, url, width)
		return ImagePreviewMsg{RecipeID: recipeID, Preview: preview, Err: err}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened recipe source in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard", Opened: false}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}

func orDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}
