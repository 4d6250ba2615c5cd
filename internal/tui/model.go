package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/glabrego/forkify-cli/internal/app"
	"github.com/glabrego/forkify-cli/internal/logging"
	"github.com/glabrego/forkify-cli/internal/tui/actions"
	"github.com/glabrego/forkify-cli/internal/tui/platform"
	"github.com/glabrego/forkify-cli/internal/tui/state"
	tuitheme "github.com/glabrego/forkify-cli/internal/tui/theme"
	"github.com/glabrego/forkify-cli/internal/tui/view"
)

type clearStatusMsg struct {
	id int
}

type Options struct {
	// Service runs the network half of remote operations. Defaults to the
	// store itself.
	Service actions.Service
	Timeout time.Duration
	Logger  *log.Logger

	// UploadEnabled gates the add-recipe form; uploads need an API key.
	UploadEnabled bool

	InitialQuery    string
	InitialRecipeID string

	OpenURL     func(string) error
	CopyURL     func(string) error
	RenderImage actions.ImagePreviewFunc
}

type Model struct {
	store   *app.Store
	service actions.Service
	panes   *displays
	log     *log.Logger
	theme   tuitheme.Theme
	timeout time.Duration

	mode       string
	returnMode string
	showHelp   bool
	searching  bool
	search     textinput.Model
	form       view.UploadForm
	spinner    spinner.Model
	spinning   bool

	resultsCursor   int
	bookmarksCursor int
	detailTop       int

	inflight  int
	uploading bool
	status    string
	statusID  int
	err       error

	width  int
	height int

	uploadEnabled bool
	openURLFn     func(string) error
	copyURLFn     func(string) error
	renderImageFn actions.ImagePreviewFunc
	imagePreview  map[string]string
	imageErr      map[string]string
	imageLoading  bool
	showImage     bool

	initCmds []tea.Cmd
}

func NewModel(store *app.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	service := opts.Service
	if service == nil {
		service = store
	}
	openFn := opts.OpenURL
	if openFn == nil {
		openFn = platform.OpenURLInBrowser
	}
	copyFn := opts.CopyURL
	if copyFn == nil {
		copyFn = platform.CopyURLToClipboard
	}
	renderImage := opts.RenderImage
	if renderImage == nil {
		client := &http.Client{Timeout: 8 * time.Second}
		renderImage = func(ctx context.Context, url string, width int) (string, error) {
			return view.RenderImagePreview(ctx, client, url, width)
		}
	}

	search := textinput.New()
	search.Placeholder = "Search over 1,000,000 recipes..."
	search.CharLimit = 100
	search.Width = 40
	search.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		store:         store,
		service:       service,
		panes:         newDisplays(store, logger),
		log:           logger,
		theme:         tuitheme.Default(),
		timeout:       opts.Timeout,
		mode:          view.ModeResults,
		returnMode:    view.ModeResults,
		search:        search,
		form:          view.NewUploadForm(),
		spinner:       sp,
		uploadEnabled: opts.UploadEnabled,
		openURLFn:     openFn,
		copyURLFn:     copyFn,
		renderImageFn: renderImage,
		imagePreview:  make(map[string]string),
		imageErr:      make(map[string]string),
	}

	if q := strings.TrimSpace(opts.InitialQuery); q != "" {
		var cmd tea.Cmd
		m, cmd = m.startSearch(q)
		m.initCmds = append(m.initCmds, cmd)
	}
	if id := strings.TrimSpace(opts.InitialRecipeID); id != "" {
		var cmd tea.Cmd
		m, cmd = m.openRecipe(id)
		m.initCmds = append(m.initCmds, cmd)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if len(m.initCmds) == 0 {
		return nil
	}
	return tea.Batch(m.initCmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actions.RecipeLoadedMsg:
		return m.recipeLoaded(msg)
	case actions.SearchLoadedMsg:
		return m.searchLoaded(msg)
	case actions.UploadDoneMsg:
		return m.uploadDone(msg)
	case actions.CloseFormMsg:
		if m.mode == view.ModeUpload && m.panes.upload.Surface() == view.SurfaceMessage {
			m.resetForm()
			m.mode = view.ModeRecipe
			m.returnMode = view.ModeBookmarks
			m.detailTop = 0
		}
		return m, nil
	case actions.ImagePreviewMsg:
		m.imageLoading = false
		if msg.Err != nil {
			m.imageErr[msg.RecipeID] = msg.Err.Error()
			m.log.Debug("image preview failed", "id", msg.RecipeID, "err", msg.Err)
			return m, nil
		}
		delete(m.imageErr, msg.RecipeID)
		m.imagePreview[msg.RecipeID] = msg.Preview
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status, 3*time.Second)
	case actions.OpenURLErrorMsg:
		m.err = nil
		return m.setStatus(msg.Err.Error(), 4*time.Second)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	if m.mode == view.ModeUpload {
		cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) recipeLoaded(msg actions.RecipeLoadedMsg) (tea.Model, tea.Cmd) {
	m.done()
	err := m.store.ApplyRecipe(msg.Result)
	switch {
	case errors.Is(err, app.ErrStale):
		return m, nil
	case err != nil:
		m.panes.check(m.panes.recipe.RenderError(""))
		m.err = err
		m.status = ""
		return m, nil
	}
	rec, _ := m.store.Recipe()
	m.err = nil
	if idx := state.IndexByID(m.store.CurrentPage(), rec.ID); idx >= 0 {
		m.resultsCursor = idx
	}
	return m.setStatus(fmt.Sprintf("Loaded %s (%dms)", rec.Title, msg.Duration.Milliseconds()), 3*time.Second)
}

func (m Model) searchLoaded(msg actions.SearchLoadedMsg) (tea.Model, tea.Cmd) {
	m.done()
	err := m.store.ApplySearch(msg.Result)
	switch {
	case errors.Is(err, app.ErrStale):
		return m, nil
	case err != nil:
		m.panes.check(m.panes.results.RenderError(""))
		m.panes.pagination.Clear()
		m.err = err
		m.status = ""
		return m, nil
	}
	m.err = nil
	m.resultsCursor = 0
	count := len(m.store.Search().Results)
	return m.setStatus(fmt.Sprintf("%d recipes for %q", count, msg.Result.Request.Query), 3*time.Second)
}

func (m Model) uploadDone(msg actions.UploadDoneMsg) (tea.Model, tea.Cmd) {
	m.done()
	m.uploading = false
	ctx, cancel := m.opContext()
	defer cancel()

	err := m.store.ApplyUpload(ctx, msg.Result)
	switch {
	case errors.Is(err, app.ErrStale):
		return m, nil
	case msg.Result.Err != nil:
		m.panes.check(m.panes.upload.RenderError(msg.Result.Err.Error()))
		m.err = err
		return m, nil
	case err != nil:
		// Uploaded and opened; only the bookmark write failed.
		m.err = err
	default:
		m.err = nil
	}
	m.panes.check(m.panes.upload.RenderMessage(""))
	m.status = "Recipe uploaded"
	return m, actions.CloseFormCmd(actions.CloseFormDelay)
}

func (m Model) startSearch(query string) (Model, tea.Cmd) {
	req := m.store.NewSearchRequest(query)
	m.panes.check(m.panes.results.RenderSpinner())
	m.panes.pagination.Clear()
	m.mode = view.ModeResults
	m.resultsCursor = 0
	m.err = nil
	m.status = "Searching..."
	m.inflight++
	spin := m.startSpinner()
	return m, tea.Batch(actions.SearchCmd(m.service, req, m.timeout), spin)
}

func (m Model) openRecipe(id string) (Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	req := m.store.NewRecipeRequest(id)
	m.panes.check(m.panes.recipe.RenderSpinner())
	if m.mode != view.ModeRecipe {
		m.returnMode = m.mode
	}
	m.mode = view.ModeRecipe
	m.detailTop = 0
	m.showImage = false
	m.err = nil
	m.inflight++
	spin := m.startSpinner()
	return m, tea.Batch(actions.LoadRecipeCmd(m.service, req, m.timeout), spin)
}

func (m Model) submitUpload() (Model, tea.Cmd) {
	req, err := m.store.NewUploadRequest(m.form.Values())
	if err != nil {
		m.panes.check(m.panes.upload.RenderError(err.Error()))
		return m, nil
	}
	m.panes.check(m.panes.upload.RenderSpinner())
	m.uploading = true
	m.err = nil
	m.inflight++
	spin := m.startSpinner()
	return m, tea.Batch(actions.UploadCmd(m.service, req, m.timeout), spin)
}

func (m Model) toggleBookmark() (tea.Model, tea.Cmd) {
	ctx, cancel := m.opContext()
	defer cancel()

	bookmarked, err := m.store.ToggleBookmark(ctx)
	if errors.Is(err, app.ErrNoRecipe) {
		return m, nil
	}
	m.err = err
	status := "Removed bookmark"
	if bookmarked {
		status = "Bookmarked recipe"
	}
	return m.setStatus(status, 3*time.Second)
}

func (m Model) deleteBookmarkAtCursor() (tea.Model, tea.Cmd) {
	ids := view.RowIDs(m.panes.bookmarks.Root())
	if len(ids) == 0 {
		return m, nil
	}
	ctx, cancel := m.opContext()
	defer cancel()

	id := ids[state.ClampCursor(m.bookmarksCursor, len(ids))]
	m.err = m.store.DeleteBookmark(ctx, id)
	m.bookmarksCursor = state.CursorAfterRemove(m.bookmarksCursor, len(ids)-1)
	return m.setStatus("Removed bookmark", 3*time.Second)
}

func (m Model) openSourceURL(copyOnly bool) (tea.Model, tea.Cmd) {
	rec, ok := m.store.Recipe()
	if !ok {
		return m, nil
	}
	validURL, err := platform.ValidateSourceURL(rec.SourceURL)
	if err != nil {
		m.err = nil
		return m.setStatus(err.Error(), 4*time.Second)
	}
	if copyOnly {
		return m, actions.CopyURLCmd(validURL, m.copyURLFn)
	}
	return m, actions.OpenURLCmd(validURL, m.openURLFn, m.copyURLFn)
}

func (m Model) toggleImagePreview() (tea.Model, tea.Cmd) {
	rec, ok := m.store.Recipe()
	if !ok {
		return m, nil
	}
	m.showImage = !m.showImage
	if !m.showImage || m.imageLoading {
		return m, nil
	}
	if _, cached := m.imagePreview[rec.ID]; cached {
		return m, nil
	}
	delete(m.imageErr, rec.ID)
	m.imageLoading = true
	return m, actions.ImagePreviewCmd(rec.ID, rec.Image, m.contentWidth(), m.renderImageFn, m.timeout)
}

func (m *Model) resetForm() {
	m.form = view.NewUploadForm()
	m.panes.upload.Clear()
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) done() {
	if m.inflight > 0 {
		m.inflight--
	}
	if m.inflight == 0 && m.status == "Searching..." {
		m.status = ""
	}
}

func (m Model) busy() bool {
	return m.inflight > 0
}

func (m Model) setStatus(status string, after time.Duration) (Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, after)
}

func (m Model) opContext() (context.Context, context.CancelFunc) {
	timeout := m.timeout
	if timeout <= 0 {
		timeout = actions.DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
