package htmldeck

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

// ptPerPx converts CSS pixel font sizes to points (96 px/in, 72 pt/in).
const ptPerPx = 0.75

// inlineStyle parses just the element's inline style attribute.
func inlineStyle(n *html.Node) css.Decl {
	return css.ParseInline(dom.Style(n))
}

// pick returns the first declared, non-empty value among decl lists for a
// property, in decreasing precedence.
func pick(prop string, decls ...css.Decl) string {
	for _, d := range decls {
		if v, ok := d.Get(prop); ok && v != "" {
			return v
		}
	}
	return ""
}

// pickColor resolves the first parseable color for a property.
func pickColor(prop string, decls ...css.Decl) css.Color {
	for _, d := range decls {
		if c := css.ParseColor(d.Val(prop)); c.Valid() {
			return c
		}
	}
	return css.Color{}
}

// pickBackground resolves the first parseable background fill.
func pickBackground(decls ...css.Decl) css.Color {
	for _, d := range decls {
		if c := css.ParseColor(d.Background()); c.Valid() {
			return c
		}
	}
	return css.Color{}
}

// pickPx resolves the first declared length for a property, in pixels.
// def is used when nothing is declared.
func pickPx(prop string, def float64, decls ...css.Decl) float64 {
	if v := pick(prop, decls...); v != "" {
		return css.Px(v)
	}
	return def
}

// boldOf resolves font-weight across decls; def applies when no decl
// declares a weight.
func boldOf(def bool, decls ...css.Decl) bool {
	for _, d := range decls {
		if d.Has("font-weight") {
			return d.Bold(def)
		}
	}
	return def
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}

// collapseSpace trims and collapses internal whitespace runs to single
// spaces, the way rendered HTML text reads.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
