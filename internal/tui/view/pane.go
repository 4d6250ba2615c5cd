package view

import (
	"fmt"

	"github.com/glabrego/forkify-cli/internal/render/markup"
	"github.com/glabrego/forkify-cli/internal/render/terminal"
	"github.com/glabrego/forkify-cli/internal/render/vtree"
)

// Surface is what a pane currently displays.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceContent
	SurfaceError
	SurfaceMessage
	SurfaceSpinner
)

// Pane owns the displayed tree of one view. Render replaces it wholesale;
// Update reconciles it in place so transient state on untouched nodes
// survives.
type Pane struct {
	view         string
	errorMessage string
	message      string

	root    *vtree.Node
	surface Surface
}

func NewPane(view, errorMessage, message string) *Pane {
	return &Pane{view: view, errorMessage: errorMessage, message: message}
}

func (p *Pane) Root() *vtree.Node { return p.root }

func (p *Pane) Surface() Surface { return p.surface }

// Render replaces the displayed tree with data's markup. Empty data shows
// the pane's error message instead.
func (p *Pane) Render(data any) error {
	if markup.IsEmpty(data) {
		return p.RenderError("")
	}
	tree, err := build(p.view, data)
	if err != nil {
		return err
	}
	p.root = tree
	p.surface = SurfaceContent
	return nil
}

// Update converges the displayed tree to data's markup and returns the
// mutations applied. A pane not showing its own content is rendered
// instead, as is one whose new tree has a different node count.
func (p *Pane) Update(data any) ([]vtree.Mutation, error) {
	if p.root == nil || p.surface != SurfaceContent || markup.IsEmpty(data) {
		return nil, p.Render(data)
	}
	desired, err := build(p.view, data)
	if err != nil {
		return nil, err
	}
	if len(vtree.Flatten(p.root)) != len(vtree.Flatten(desired)) {
		p.root = desired
		return nil, nil
	}
	return vtree.Reconcile(p.root, desired), nil
}

// RenderError shows msg, or the pane's default error message when msg is
// empty.
func (p *Pane) RenderError(msg string) error {
	if msg == "" {
		msg = p.errorMessage
	}
	return p.renderSurface(markup.MessageView, markup.Message{Kind: "error", Text: msg}, SurfaceError)
}

// RenderMessage shows msg, or the pane's default success message when msg
// is empty.
func (p *Pane) RenderMessage(msg string) error {
	if msg == "" {
		msg = p.message
	}
	return p.renderSurface(markup.MessageView, markup.Message{Kind: "message", Text: msg}, SurfaceMessage)
}

func (p *Pane) RenderSpinner() error {
	return p.renderSurface(markup.SpinnerView, nil, SurfaceSpinner)
}

func (p *Pane) Clear() {
	p.root = nil
	p.surface = SurfaceNone
}

func (p *Pane) Lines(width int) []string {
	return terminal.Lines(p.root, width)
}

func (p *Pane) renderSurface(view string, data any, surface Surface) error {
	tree, err := build(view, data)
	if err != nil {
		return err
	}
	p.root = tree
	p.surface = surface
	return nil
}

func build(view string, data any) (*vtree.Node, error) {
	out, err := markup.Generate(view, data)
	if err != nil {
		return nil, err
	}
	tree, err := vtree.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("parse %s markup: %w", view, err)
	}
	return tree, nil
}
