package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/forkify-cli/internal/recipe"
	tuitheme "github.com/glabrego/forkify-cli/internal/tui/theme"
)

type formField struct {
	label string
	input textinput.Model
}

// UploadForm is the add-recipe form: six recipe fields followed by the
// ingredient lines.
type UploadForm struct {
	fields []formField
	focus  int
}

func NewUploadForm() UploadForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 50
		ti.Prompt = ""
		return ti
	}
	fields := []formField{
		{label: "Title", input: newInput("Recipe title", 120)},
		{label: "URL", input: newInput("https://", 300)},
		{label: "Image URL", input: newInput("https://", 300)},
		{label: "Publisher", input: newInput("Your name", 80)},
		{label: "Prep time", input: newInput("minutes", 5)},
		{label: "Servings", input: newInput("4", 3)},
	}
	for i := 1; i <= recipe.MaxIngredientLines; i++ {
		fields = append(fields, formField{
			label: fmt.Sprintf("Ingredient %d", i),
			input: newInput("quantity,unit,description", 200),
		})
	}
	f := UploadForm{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f UploadForm) Focused() int { return f.focus }

// Next moves focus down one field, wrapping at the end.
func (f *UploadForm) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.fields))
}

func (f *UploadForm) Prev() tea.Cmd {
	return f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
}

func (f *UploadForm) setFocus(i int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[f.focus].input.Focus()
}

// Update forwards msg to the focused input.
func (f *UploadForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// SetValue fills field i; out-of-range indices are ignored.
func (f *UploadForm) SetValue(i int, value string) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	f.fields[i].input.SetValue(value)
}

// Values collects the raw input as a recipe form.
func (f UploadForm) Values() recipe.Form {
	value := func(i int) string { return f.fields[i].input.Value() }
	form := recipe.Form{
		Title:       value(0),
		SourceURL:   value(1),
		Image:       value(2),
		Publisher:   value(3),
		CookingTime: value(4),
		Servings:    value(5),
	}
	for i := 6; i < len(f.fields); i++ {
		form.Ingredients = append(form.Ingredients, value(i))
	}
	return form
}

func (f UploadForm) Lines(th tuitheme.Theme) []string {
	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, len(field.label))
	}
	lines := []string{th.Section.Render("Recipe data"), ""}
	for i, field := range f.fields {
		if i == 6 {
			lines = append(lines, "", th.Section.Render("Ingredients"), "")
		}
		marker := "  "
		if i == f.focus {
			marker = th.Prompt.Render("> ")
		}
		label := th.RenderLabel(i == f.focus, field.label+strings.Repeat(" ", labelWidth-len(field.label)))
		lines = append(lines, marker+label+"  "+field.input.View())
	}
	lines = append(lines, "", th.FormHint.Render("Ingredients use quantity,unit,description. Empty lines are skipped."))
	return lines
}
