// Package markup generates the markup each view is built from. Generators
// are pure: the same data always yields the same markup, which keeps
// successive trees of one view shape-stable for reconciliation.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"reflect"

	"github.com/glabrego/forkify-cli/internal/pagination"
	"github.com/glabrego/forkify-cli/internal/recipe"
)

// View names accepted by Generate.
const (
	RecipeView     = "recipe"
	ResultsView    = "results"
	BookmarksView  = "bookmarks"
	PaginationView = "pagination"
	MessageView    = "message"
	SpinnerView    = "spinner"
)

// ListData feeds the results and bookmarks views. ActiveID marks the recipe
// currently open in the detail view.
type ListData struct {
	Items    []recipe.Summary
	ActiveID string
}

func (d ListData) Empty() bool { return len(d.Items) == 0 }

// PaginationData is the slice of search state the pagination view needs.
type PaginationData struct {
	Page         int
	ResultsCount int
	PerPage      int
}

func (d PaginationData) Controls() pagination.Controls {
	return pagination.ControlsFor(d.ResultsCount, d.PerPage, d.Page)
}

// Message is an error or success notice replacing a view's content.
type Message struct {
	Kind string // "error" or "message"
	Text string
}

type preview struct {
	recipe.Summary
	Active bool
}

var funcs = template.FuncMap{
	"qty": recipe.FormatQuantity,
	"previewOf": func(s recipe.Summary, activeID string) preview {
		return preview{Summary: s, Active: activeID != "" && s.ID == activeID}
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

var templates = template.Must(template.New("views").Funcs(funcs).Parse(viewTemplates))

// Generate renders the named view for data.
func Generate(view string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, view, data); err != nil {
		return "", fmt.Errorf("generate %s markup: %w", view, err)
	}
	return buf.String(), nil
}

// IsEmpty reports whether data should render a view's error surface instead
// of its markup: nil, an empty slice or map, or a value whose Empty method
// says so.
func IsEmpty(data any) bool {
	if data == nil {
		return true
	}
	if e, ok := data.(interface{ Empty() bool }); ok {
		return e.Empty()
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// Summaries projects bookmarks onto list rows.
func Summaries(recipes []recipe.Recipe) []recipe.Summary {
	out := make([]recipe.Summary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Summary())
	}
	return out
}
