package view

import (
	"strconv"

	"github.com/glabrego/forkify-cli/internal/render/terminal"
	"github.com/glabrego/forkify-cli/internal/render/vtree"
)

// ServingsTargets reads the servings the decrease and increase buttons of
// a displayed recipe point at.
func ServingsTargets(root *vtree.Node) (decrease, increase int, ok bool) {
	dec := intAttr(vtree.FindByClass(root, "btn--decrease-servings"), "data-update-to")
	inc := intAttr(vtree.FindByClass(root, "btn--increase-servings"), "data-update-to")
	if dec == 0 && inc == 0 {
		return 0, 0, false
	}
	return dec, inc, true
}

// PageTargets reads the pages the displayed pagination buttons go to; zero
// means the button is absent.
func PageTargets(root *vtree.Node) (prev, next int) {
	prev = intAttr(vtree.FindByClass(root, "pagination__btn--prev"), "data-goto")
	next = intAttr(vtree.FindByClass(root, "pagination__btn--next"), "data-goto")
	return prev, next
}

// RowIDs lists the recipe ids of the displayed preview rows, top to bottom.
func RowIDs(root *vtree.Node) []string {
	rows := vtree.FindAllByClass(root, "preview")
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Attr("data-id"))
	}
	return ids
}

// MarkCursor sets the cursor highlight on preview row i and clears it
// elsewhere.
func MarkCursor(root *vtree.Node, i int) {
	for n, row := range vtree.FindAllByClass(root, "preview") {
		row.SetTransient(terminal.TransientCursor, n == i)
	}
}

func intAttr(n *vtree.Node, name string) int {
	if n == nil {
		return 0
	}
	v, err := strconv.Atoi(n.Attr(name))
	if err != nil {
		return 0
	}
	return v
}
