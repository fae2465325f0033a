// Package dom provides the small set of element-tree helpers the renderer
// needs on top of golang.org/x/net/html: class and tag lookup, attribute
// access, and text content.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// Tag returns the element's tag name, or "" for non-element nodes.
func Tag(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Style returns the raw inline style attribute text.
func Style(n *html.Node) string {
	return Attr(n, "style")
}

// Classes returns the element's class list in source order.
func Classes(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether the element carries the class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of the subtree, trimmed.
func Text(n *html.Node) string {
	var sb strings.Builder
	appendText(&sb, n)
	return strings.TrimSpace(sb.String())
}

func appendText(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(sb, c)
	}
}

// Children returns the element children of n in document order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FindAll returns the descendants of n (excluding n itself) matching pred,
// in document order.
func FindAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(m *html.Node) {
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && pred(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Find returns the first descendant of n matching pred, or nil.
func Find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if all := FindAll(n, pred); len(all) > 0 {
		return all[0]
	}
	return nil
}

// ByClass returns the descendants of n carrying the class.
func ByClass(n *html.Node, class string) []*html.Node {
	return FindAll(n, func(m *html.Node) bool { return HasClass(m, class) })
}

// FirstByClass returns the first descendant carrying the class, or nil.
func FirstByClass(n *html.Node, class string) *html.Node {
	return Find(n, func(m *html.Node) bool { return HasClass(m, class) })
}

// ByTag returns the descendants of n with the tag name.
func ByTag(n *html.Node, tag string) []*html.Node {
	return FindAll(n, func(m *html.Node) bool { return Tag(m) == tag })
}

// FirstByTag returns the first descendant with the tag name, or nil.
func FirstByTag(n *html.Node, tag string) *html.Node {
	return Find(n, func(m *html.Node) bool { return Tag(m) == tag })
}
