package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/forkify-cli/internal/render/vtree"
)

func (r renderer) renderNodes(nodes []*vtree.Node, listDepth int) []string {
	lines := make([]string, 0, len(nodes)*2)
	inlineParts := make([]string, 0, 4)
	flushInline := func() {
		text := normalizeInlineText(strings.Join(inlineParts, " "))
		inlineParts = inlineParts[:0]
		if text == "" {
			return
		}
		lines = append(lines, wrapText(text, r.width)...)
	}

	for _, node := range nodes {
		if hidden(node) {
			continue
		}
		if !isBlockElement(node.Tag) {
			inlineParts = append(inlineParts, r.renderInline(node))
			continue
		}
		flushInline()
		block := r.renderBlock(node, listDepth)
		if len(block) == 0 {
			continue
		}
		if needsGap(node) && len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flushInline()
	return trimBlankLines(lines)
}

func (r renderer) renderBlock(node *vtree.Node, listDepth int) []string {
	switch {
	case node.HasClass("preview"):
		return r.renderPreview(node)
	case node.HasClass("error"):
		return styleNonBlankLines(wrapPrefixedText(r.renderInlineChildren(node), r.width, "✗ ", "  "), errorStyle)
	case node.HasClass("message"):
		return styleNonBlankLines(wrapPrefixedText(r.renderInlineChildren(node), r.width, "✓ ", "  "), messageStyle)
	case node.HasClass("spinner"):
		return styleNonBlankLines(wrapText(r.renderInlineChildren(node), r.width), spinnerStyle)
	}

	switch node.Tag {
	case "script", "style", "noscript", "svg":
		return nil
	case "h1", "h2", "h3", "h4":
		level := int(node.Tag[1] - '0')
		text := normalizeInlineText(r.renderInlineChildren(node))
		prefix := headingPrefix(level)
		return styleNonBlankLines(
			wrapPrefixedText(text, r.width, prefix, strings.Repeat(" ", visibleLen(prefix))),
			headingStyle,
		)
	case "ul", "ol":
		return r.renderList(node, node.Tag == "ol", listDepth+1)
	case "li":
		return r.renderListItem(node, listDepth, "- ")
	case "img":
		if r.opts.ImageMode == ImageModeNone {
			return nil
		}
		return renderImageLabel(node, r.width)
	default:
		if hasBlockChild(node) {
			return r.renderNodes(node.Children, listDepth)
		}
		text := normalizeInlineText(r.renderInlineChildren(node))
		if text == "" {
			return nil
		}
		return wrapText(text, r.width)
	}
}

func (r renderer) renderList(node *vtree.Node, ordered bool, listDepth int) []string {
	lines := make([]string, 0, len(node.Children))
	itemIndex := 0
	for _, child := range node.Children {
		if hidden(child) || child.Tag != "li" {
			continue
		}
		itemIndex++
		if child.HasClass("preview") {
			lines = append(lines, r.renderPreview(child)...)
			continue
		}
		marker := unorderedListMarker(listDepth)
		if ordered {
			marker = fmt.Sprintf("%d. ", itemIndex)
		}
		lines = append(lines, r.renderListItem(child, listDepth, marker)...)
	}
	return lines
}

func (r renderer) renderListItem(node *vtree.Node, listDepth int, marker string) []string {
	indent := strings.Repeat("  ", max(0, listDepth-1))
	text := normalizeInlineText(r.renderInlineChildren(node))
	if text == "" {
		return nil
	}
	return wrapPrefixedText(text, r.width, indent+marker, indent+strings.Repeat(" ", visibleLen(marker)))
}

// renderPreview draws one result or bookmark row on a single line:
// open-recipe marker, title, publisher and the user-recipe badge.
func (r renderer) renderPreview(node *vtree.Node) []string {
	link := vtree.FindByClass(node, "preview__link")
	title := ""
	if n := vtree.FindByClass(node, "preview__title"); n != nil {
		title = n.Text
	}
	publisher := ""
	if n := vtree.FindByClass(node, "preview__publisher"); n != nil {
		publisher = n.Text
	}
	user := false
	if n := vtree.FindByClass(node, "preview__user-generated"); n != nil {
		user = !n.HasClass("hidden")
	}

	marker := "  "
	titleStyle := previewTitle
	if link != nil && link.HasClass("preview__link--active") {
		marker = previewOpen.Render("▸ ")
		titleStyle = previewOpen
	}

	right := publisherStyle.Render(publisher)
	if user {
		right += " " + userBadgeStyle.Render("[user]")
	}
	available := r.width - visibleLen(marker) - visibleLen(right) - 1
	label := truncateRunes(title, max(1, available))
	gap := max(1, r.width-visibleLen(marker)-visibleLen(label)-visibleLen(right))
	line := marker + titleStyle.Render(label) + strings.Repeat(" ", gap) + right
	if node.TransientBool(TransientCursor) {
		line = cursorStyle.Render(StripANSI(line))
	}
	return []string{line}
}

func renderImageLabel(node *vtree.Node, width int) []string {
	label := imageLabelStyle.Render("◌◌◌ Image")
	text := normalizeInlineText(node.Attr("alt"))
	if text != "" {
		label += " " + imageTextStyle.Render(text)
	}
	return wrapText(label, max(1, width))
}

func headingPrefix(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(headingBars) {
		level = len(headingBars)
	}
	return headingBars[level-1].Render("▌") + strings.Repeat(" ", max(1, level-1))
}

func unorderedListMarker(listDepth int) string {
	switch listDepth {
	case 1:
		return "• "
	case 2:
		return "◦ "
	default:
		return "▪ "
	}
}

func styleNonBlankLines(lines []string, style lipgloss.Style) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		out[i] = style.Render(line)
	}
	return out
}

func hidden(node *vtree.Node) bool {
	return node.HasClass("hidden")
}

func needsGap(node *vtree.Node) bool {
	switch node.Tag {
	case "h1", "h2", "h3", "h4", "ul", "ol", "figure", "p":
		return true
	}
	return node.HasClass("recipe__details") || node.HasClass("recipe__ingredients") || node.HasClass("recipe__directions")
}

func isBlockElement(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "main", "header", "footer", "aside", "nav",
		"ul", "ol", "li", "img", "figure", "figcaption":
		return true
	default:
		return false
	}
}

func hasBlockChild(node *vtree.Node) bool {
	for _, child := range node.Children {
		if !hidden(child) && isBlockElement(child.Tag) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return string(runes[:maxLen-3]) + "..."
}
