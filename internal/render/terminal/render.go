// Package terminal projects displayed render trees onto styled terminal lines.
package terminal

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/forkify-cli/internal/render/vtree"
)

// TransientCursor is the transient key the list views set on the row under
// the cursor.
const TransientCursor = "cursor"

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type ImageMode int

const (
	ImageModeLabel ImageMode = iota
	ImageModeNone
)

type Options struct {
	ImageMode ImageMode
	ShowLinks bool
}

var DefaultOptions = Options{
	ImageMode: ImageModeLabel,
	ShowLinks: true,
}

type renderer struct {
	width int
	opts  Options
}

func Lines(root *vtree.Node, width int) []string {
	return LinesWithOptions(root, width, DefaultOptions)
}

func LinesWithOptions(root *vtree.Node, width int, opts Options) []string {
	if root == nil {
		return nil
	}
	r := renderer{width: max(1, width), opts: opts}
	lines := r.renderNodes(root.Children, 0)
	if text := normalizeInlineText(root.Text); text != "" {
		lines = append(wrapText(text, r.width), lines...)
	}
	return trimBlankLines(lines)
}

// Text is Lines joined with newlines and stripped of styling.
func Text(root *vtree.Node, width int) string {
	return StripANSI(strings.Join(LinesWithOptions(root, width, DefaultOptions), "\n"))
}

func StripANSI(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

func trimBlankLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for visibleLen(word) > width && !strings.Contains(word, "\x1b") {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				runes := []rune(word)
				out = append(out, string(runes[:width]))
				word = string(runes[width:])
			}

			if line == "" {
				line = word
				continue
			}
			if visibleLen(line)+1+visibleLen(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func wrapPrefixedText(text string, width int, firstPrefix, restPrefix string) []string {
	text = normalizeInlineText(text)
	if text == "" {
		return nil
	}
	firstWidth := max(1, width-visibleLen(firstPrefix))
	restWidth := max(1, width-visibleLen(restPrefix))
	wrapped := wrapText(text, firstWidth)
	if len(wrapped) <= 1 {
		return []string{firstPrefix + strings.Join(wrapped, "")}
	}
	rest := wrapText(strings.Join(wrapped[1:], " "), restWidth)
	out := make([]string, 0, 1+len(rest))
	out = append(out, firstPrefix+wrapped[0])
	for _, line := range rest {
		out = append(out, restPrefix+line)
	}
	return out
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}
