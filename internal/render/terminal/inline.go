package terminal

import (
	"strings"

	"github.com/glabrego/forkify-cli/internal/render/vtree"
)

// renderInlineChildren renders a node's own text followed by its children.
// Element text is kept on leaves by the view markup, so the order is exact
// for every tree the views produce.
func (r renderer) renderInlineChildren(node *vtree.Node) string {
	parts := make([]string, 0, len(node.Children)+1)
	if node.Text != "" {
		parts = append(parts, node.Text)
	}
	for _, child := range node.Children {
		if hidden(child) {
			continue
		}
		parts = append(parts, r.renderInline(child))
	}
	return strings.Join(parts, " ")
}

func (r renderer) renderInline(node *vtree.Node) string {
	if node == nil || hidden(node) {
		return ""
	}
	switch node.Tag {
	case "script", "style", "noscript", "img", "svg":
		return ""
	case "br":
		return "\n"
	case "button":
		text := normalizeInlineText(r.renderInlineChildren(node))
		if text == "" {
			return ""
		}
		return buttonStyle.Render("[" + text + "]")
	case "a":
		text := normalizeInlineText(r.renderInlineChildren(node))
		href := strings.TrimSpace(node.Attr("href"))
		switch {
		case href == "" || strings.HasPrefix(href, "#") || !r.opts.ShowLinks:
			return text
		case text == "":
			return linkURLStyle.Render(href)
		case strings.EqualFold(text, href):
			return linkURLStyle.Render(href)
		default:
			return text + " " + linkURLStyle.Render("("+href+")")
		}
	default:
		return r.renderInlineChildren(node)
	}
}

func normalizeInlineText(s string) string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	normalized := strings.Join(out, "\n")
	replacer := strings.NewReplacer(
		" .", ".",
		" ,", ",",
		" ;", ";",
		" :", ":",
		" !", "!",
		" ?", "?",
		" )", ")",
		"( ", "(",
	)
	return replacer.Replace(normalized)
}
