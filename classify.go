package htmldeck

import (
	"golang.org/x/net/html"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

// BlockKind is the closed classification of an absolutely-positioned block.
// Exactly one kind applies per block.
type BlockKind int

const (
	KindGeneric BlockKind = iota
	KindSectionWithProgressBar
	KindSectionWithTable
	KindSectionPlainBody
	KindStandaloneTable
	KindLegend
)

func (k BlockKind) String() string {
	switch k {
	case KindSectionWithProgressBar:
		return "section-with-progress-bar"
	case KindSectionWithTable:
		return "section-with-table"
	case KindSectionPlainBody:
		return "section-plain-body"
	case KindStandaloneTable:
		return "standalone-table"
	case KindLegend:
		return "legend"
	default:
		return "generic"
	}
}

// Structural marker classes. These mark DOM roles, not appearance: every
// other decision below is made from element shape and CSS properties, so
// decks with different class names for colors and sizing still classify.
const (
	markerSectionHeader = "section-header"
	markerSectionBox    = "section-box"
)

// Classify returns the kind of an absolutely-positioned block, evaluating
// the shape predicates in fixed priority order. The order is a contract:
// some blocks satisfy several predicates (a progress section may also nest
// a table) and the first match wins.
func Classify(block *html.Node, style css.Decl) BlockKind {
	hasHeader := dom.FirstByClass(block, markerSectionHeader) != nil
	hasTable := dom.FirstByTag(block, "table") != nil

	if hasHeader {
		if hasProgressBar(block) {
			return KindSectionWithProgressBar
		}
		if hasTable {
			return KindSectionWithTable
		}
		return KindSectionPlainBody
	}
	if hasTable {
		return KindStandaloneTable
	}
	if isLegend(block, style) {
		return KindLegend
	}
	return KindGeneric
}

// hasProgressBar reports whether a block contains a progress indicator at
// any depth: a div whose inline style combines rounded corners, a
// constrained height and a background fill, with no text of its own.
func hasProgressBar(block *html.Node) bool {
	return dom.Find(block, isProgressBar) != nil
}

func isProgressBar(n *html.Node) bool {
	if dom.Tag(n) != "div" {
		return false
	}
	st := css.ParseInline(dom.Style(n))
	if !st.Has("border-radius") || !st.Has("height") {
		return false
	}
	if !css.ParseColor(st.Background()).Valid() {
		return false
	}
	return ownText(n) == ""
}

// progressPercent extracts the completion percentage of a progress bar
// from the relative width of its widest fill div.
func progressPercent(bar *html.Node) float64 {
	var pct float64
	for _, fill := range dom.Children(bar) {
		if dom.Tag(fill) != "div" {
			continue
		}
		st := css.ParseInline(dom.Style(fill))
		if !css.ParseColor(st.Background()).Valid() {
			continue
		}
		if p := css.Percent(st.Val("width")); p > pct {
			pct = p
		}
	}
	return pct
}

// isLegend detects a legend by structure: the block is anchored to the
// slide bottom and holds colored circle or colored bullet spans.
func isLegend(block *html.Node, style css.Decl) bool {
	if !style.Has("bottom") {
		return false
	}
	return len(legendMarkers(block)) > 0
}

// legendMarkers returns the spans inside a block that read as legend
// swatches: an empty rounded span with a background fill, or a span whose
// text is the bullet character with an explicit color.
func legendMarkers(block *html.Node) []*html.Node {
	return dom.FindAll(block, func(n *html.Node) bool {
		if dom.Tag(n) != "span" {
			return false
		}
		st := css.ParseInline(dom.Style(n))
		if css.ParseColor(st.Background()).Valid() && st.Has("border-radius") {
			return true
		}
		return ownText(n) == "●" && css.ParseColor(st.Val("color")).Valid()
	})
}

// ownText returns the text directly inside n, ignoring child elements.
func ownText(n *html.Node) string {
	var out string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out += c.Data
		}
	}
	return trimSpace(out)
}
