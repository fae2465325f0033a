package htmldeck

import (
	"golang.org/x/net/html"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

// circleGlyph is the character used for colored circle and mood-dot runs.
const circleGlyph = "●"

// inherited threads the inline formatting state down the tree. Rendering
// is a pure function of (node, inherited); sibling subtrees share nothing.
type inherited struct {
	Bold   bool
	Italic bool
	Color  css.Color
	SizePt float64
}

// blockTags are the child tags skipped when rendering the inline-only
// portion of a mixed container.
var blockTags = map[string]bool{"ul": true, "div": true, "table": true}

// renderRuns walks the inline content of n and returns its ordered styled
// runs, preserving nesting: a <strong> inside a colored <span> yields a run
// that is both bold and colored.
func renderRuns(n *html.Node, inh inherited) []*TextRun {
	return renderChildren(n, inh, false)
}

// renderInlineRuns is renderRuns minus block-level children, used when a
// container mixes leading inline text with nested blocks that are rendered
// separately.
func renderInlineRuns(n *html.Node, inh inherited) []*TextRun {
	return renderChildren(n, inh, true)
}

func renderChildren(n *html.Node, inh inherited, skipBlocks bool) []*TextRun {
	var runs []*TextRun
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if skipBlocks && blockTags[dom.Tag(c)] {
			continue
		}
		runs = append(runs, renderNode(c, inh, skipBlocks)...)
	}
	return runs
}

func renderNode(c *html.Node, inh inherited, skipBlocks bool) []*TextRun {
	if c.Type == html.TextNode {
		txt := collapseSpace(c.Data)
		if txt == "" {
			return nil
		}
		return []*TextRun{{
			Text:   txt,
			Bold:   inh.Bold,
			Italic: inh.Italic,
			Color:  inh.Color,
			SizePt: inh.SizePt,
		}}
	}
	switch dom.Tag(c) {
	case "strong", "b":
		inh.Bold = true
		return renderChildren(c, inh, skipBlocks)
	case "em", "i":
		inh.Italic = true
		return renderChildren(c, inh, skipBlocks)
	case "br":
		return []*TextRun{{Break: true}}
	case "span":
		return renderSpan(c, inh, skipBlocks)
	case "a", "sub", "sup":
		return renderChildren(c, inh, skipBlocks)
	case "":
		return nil
	default:
		return renderChildren(c, inh, skipBlocks)
	}
}

// renderSpan handles the structurally special spans: an empty span with a
// background fill and rounded (or display-set) styling is a circle glyph
// of that color; a span whose own text is the bullet character with an
// explicit color is a mood-dot glyph; anything else threads its color,
// weight and size down.
func renderSpan(c *html.Node, inh inherited, skipBlocks bool) []*TextRun {
	st := inlineStyle(c)
	bg := css.ParseColor(st.Background())
	if bg.Valid() && (st.Has("border-radius") || st.Has("display")) && ownText(c) == "" {
		return []*TextRun{{Text: circleGlyph, Color: bg, SizePt: inh.SizePt, Glyph: true}}
	}
	if ownText(c) == circleGlyph {
		if col := css.ParseColor(st.Val("color")); col.Valid() {
			return []*TextRun{{Text: circleGlyph, Color: col, SizePt: inh.SizePt, Glyph: true}}
		}
	}
	if col := css.ParseColor(st.Val("color")); col.Valid() {
		inh.Color = col
	}
	if v, ok := st.Get("font-size"); ok {
		if px := css.Px(v); px > 0 {
			inh.SizePt = px * ptPerPx
		}
	}
	if st.Has("font-weight") {
		inh.Bold = st.Bold(inh.Bold)
	}
	return renderChildren(c, inh, skipBlocks)
}

// recolor assigns def to every non-glyph run that has no explicit color.
func recolor(runs []*TextRun, def css.Color) []*TextRun {
	for _, r := range runs {
		if !r.Glyph && !r.Color.Valid() {
			r.Color = def
		}
	}
	return runs
}

// bulletFor resolves the bullet glyph and color declared by the ::before
// pseudo-element of any of the given classes. The second return reports
// whether a glyph was declared at all.
// Both ".cls::before" and the list form ".cls li::before" are checked.
func bulletFor(sheet *css.Stylesheet, classes []string) (string, css.Color, bool) {
	for _, class := range classes {
		for _, before := range []css.Decl{
			sheet.Before(class),
			sheet.Rule("."+class+" li::before", "."+class+" li:before"),
		} {
			glyph := css.Content(before.Val("content"))
			if glyph == "" {
				continue
			}
			return glyph, css.ParseColor(before.Val("color")), true
		}
	}
	return "", css.Color{}, false
}
