package vtree

import (
	"fmt"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse turns a markup fragment into a tree under a RootTag container.
// Comments are dropped and text directly under the fragment is kept as the
// container's own text.
func Parse(markup string) (*Node, error) {
	context := &nethtml.Node{Type: nethtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := nethtml.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	root := &Node{Tag: RootTag}
	texts := make([]string, 0, 2)
	for _, n := range nodes {
		switch n.Type {
		case nethtml.ElementNode:
			root.Children = append(root.Children, convertElement(n))
		case nethtml.TextNode:
			texts = append(texts, n.Data)
		}
	}
	root.Text = normalizeText(strings.Join(texts, " "))
	return root, nil
}

// MustParse is Parse for markup known at compile time.
func MustParse(markup string) *Node {
	n, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return n
}

func convertElement(n *nethtml.Node) *Node {
	out := &Node{Tag: strings.ToLower(n.Data)}
	if len(n.Attr) > 0 {
		out.Attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			if a.Namespace != "" {
				key = a.Namespace + ":" + key
			}
			if _, dup := out.Attrs[key]; dup {
				continue
			}
			out.Attrs[key] = a.Val
		}
	}

	texts := make([]string, 0, 2)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case nethtml.ElementNode:
			out.Children = append(out.Children, convertElement(child))
		case nethtml.TextNode:
			texts = append(texts, child.Data)
		}
	}
	out.Text = normalizeText(strings.Join(texts, " "))
	return out
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
