// Package vtree holds the render trees views are drawn from and the
// reconciler that converges a displayed tree onto a freshly generated one.
//
// Trees contain element nodes only. An element's text payload is the
// whitespace-normalised concatenation of its direct text children, so
// generators keep text on leaf elements.
package vtree

import (
	"html"
	"maps"
	"slices"
	"strings"
)

// RootTag marks the container node returned by Parse. The container is never
// part of a flattened listing.
const RootTag = "#fragment"

type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string

	// Transient is owned by the rendering layer (cursor highlight and the
	// like). Reconciliation never reads or writes it.
	Transient map[string]any
}

func NewRoot(children ...*Node) *Node {
	return &Node{Tag: RootTag, Children: children}
}

func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

func (n *Node) HasAttr(name string) bool {
	if n == nil || n.Attrs == nil {
		return false
	}
	_, ok := n.Attrs[name]
	return ok
}

func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

func (n *Node) RemoveAttr(name string) {
	delete(n.Attrs, name)
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(strings.Fields(n.Attr("class")), class)
}

func (n *Node) SetTransient(key string, value any) {
	if n.Transient == nil {
		n.Transient = make(map[string]any)
	}
	n.Transient[key] = value
}

func (n *Node) TransientBool(key string) bool {
	if n == nil || n.Transient == nil {
		return false
	}
	v, _ := n.Transient[key].(bool)
	return v
}

// Flatten lists the descendants of n in preorder (document order), excluding
// n itself.
func Flatten(n *Node) []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, 32)
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, child := range cur.Children {
			out = append(out, child)
			walk(child)
		}
	}
	walk(n)
	return out
}

// FindByClass returns the first descendant in document order carrying class.
func FindByClass(n *Node, class string) *Node {
	for _, el := range Flatten(n) {
		if el.HasClass(class) {
			return el
		}
	}
	return nil
}

func FindAllByClass(n *Node, class string) []*Node {
	var out []*Node
	for _, el := range Flatten(n) {
		if el.HasClass(class) {
			out = append(out, el)
		}
	}
	return out
}

// Same reports whether two nodes carry the same tag, attributes and text.
// Children are not compared.
func Same(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Tag == b.Tag && a.Text == b.Text && attrsEqual(a.Attrs, b.Attrs)
}

// Equal compares two trees deeply, ignoring Transient.
func Equal(a, b *Node) bool {
	if !Same(a, b) {
		return false
	}
	if a == nil {
		return true
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies a tree. Transient state is not copied.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Tag: n.Tag, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = maps.Clone(n.Attrs)
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = Clone(child)
		}
	}
	return out
}

// Markup serialises the tree back to HTML with attributes in name order.
func Markup(n *Node) string {
	var b strings.Builder
	writeMarkup(&b, n)
	return b.String()
}

func writeMarkup(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.Tag != RootTag {
		b.WriteString("<")
		b.WriteString(n.Tag)
		for _, name := range sortedAttrNames(n.Attrs) {
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(n.Attrs[name]))
			b.WriteString(`"`)
		}
		b.WriteString(">")
	}
	b.WriteString(html.EscapeString(n.Text))
	for _, child := range n.Children {
		writeMarkup(b, child)
	}
	if n.Tag != RootTag && !isVoid(n.Tag) {
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteString(">")
	}
}

func sortedAttrNames(attrs map[string]string) []string {
	return slices.Sorted(maps.Keys(attrs))
}

func attrsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.Equal(a, b)
}

func isVoid(tag string) bool {
	switch tag {
	case "img", "br", "hr", "input", "meta", "link", "source":
		return true
	}
	return false
}
