package htmldeck

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

// Fallback values, used only when the CSS provides nothing. Everything the
// document declares wins over these.
var (
	fallbackText  = css.RGB(0x33, 0x33, 0x33)
	fallbackMuted = css.RGB(0x66, 0x66, 0x66)
	fallbackLine  = css.RGB(0xCC, 0xCC, 0xCC)
	fallbackWhite = css.RGB(0xFF, 0xFF, 0xFF)
)

// emuPerPt converts point line widths to EMU.
const emuPerPt = 12700

// slideRenderer renders one slide element into an ordered draw-command
// sequence: chrome background rectangles and text first, then positioned
// content blocks in document order, then the legend, then links. The
// ordering is the paint order.
type slideRenderer struct {
	sheet  *css.Stylesheet
	w, h   float64 // slide size in CSS pixels
	scale  Scale
	logger *slog.Logger
	cmds   []Command
}

func newSlideRenderer(sheet *css.Stylesheet, w, h float64, scale Scale, logger *slog.Logger) *slideRenderer {
	return &slideRenderer{sheet: sheet, w: w, h: h, scale: scale, logger: logger}
}

func (r *slideRenderer) render(slide *html.Node) *Slide {
	r.chrome(slide)
	r.blocks(slide)
	r.legend(slide)
	r.links(slide)
	return &Slide{Commands: r.cmds}
}

func (r *slideRenderer) geom(x, y, w, h float64) Geometry {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Geometry{X: r.scale.EMU(x), Y: r.scale.EMU(y), W: r.scale.EMU(w), H: r.scale.EMU(h)}
}

func (r *slideRenderer) add(c Command) {
	r.cmds = append(r.cmds, c)
}

func (r *slideRenderer) rect(x, y, w, h float64, fill css.Color) {
	r.add(&Rect{Geometry: r.geom(x, y, w, h), Fill: fill})
}

func (r *slideRenderer) text(x, y, w, h float64, runs []*TextRun, align Align, middle bool) {
	if len(runs) == 0 {
		return
	}
	r.add(textBox(r.geom(x, y, w, h), runs, align, middle))
}

// blockWidth resolves a positioned block's declared width, taking
// percentages against the slide width.
func (r *slideRenderer) blockWidth(st css.Decl, def float64) float64 {
	if v, ok := st.Get("width"); ok {
		if w := css.Length(v, r.w, 16); w > 0 {
			return w
		}
	}
	return def
}

// ── chrome ──────────────────────────────────────────────────────────────

// chrome renders the fixed slide decoration. Every element is optional:
// absent input produces no commands, never an error.
func (r *slideRenderer) chrome(slide *html.Node) {
	r.topBar(slide)
	r.dateBox(slide)
	r.mainTitle(slide)
	r.footer(slide)
}

func (r *slideRenderer) topBar(slide *html.Node) {
	tb := dom.FirstByClass(slide, "top-bar")
	if tb == nil {
		return
	}
	sty := inlineStyle(tb)
	rule := r.sheet.Rule(".top-bar")
	h := pickPx("height", 8, sty, rule)
	bg := pickBackground(sty, rule)
	if !bg.Valid() {
		bg = fallbackLine
	}
	r.rect(0, 0, r.w, h, bg)
}

func (r *slideRenderer) dateBox(slide *html.Node) {
	db := dom.FirstByClass(slide, "date-box")
	if db == nil {
		return
	}
	sty := inlineStyle(db)
	rule := r.sheet.Rule(".date-box")
	w := pickPx("width", 100, sty, rule)
	h := pickPx("height", 50, sty, rule)
	top := pickPx("top", 8, sty, rule)
	right := pickPx("right", 0, sty, rule)
	left := r.w - w - right
	bg := pickBackground(sty, rule)
	if !bg.Valid() {
		bg = fallbackLine
	}
	color := pickColor("color", sty, rule)
	if !color.Valid() {
		color = fallbackWhite
	}
	fs := pickPx("font-size", 14, sty, rule) * ptPerPx
	bold := boldOf(true, sty, rule)
	r.rect(left, top, w, h, bg)
	r.text(left, top, w, h, []*TextRun{run(dom.Text(db), fs, bold, color)}, AlignCenter, true)
}

func (r *slideRenderer) mainTitle(slide *html.Node) {
	t := dom.FirstByClass(slide, "main-title")
	if t == nil {
		return
	}
	sty := inlineStyle(t)
	rule := r.sheet.Rule(".main-title")
	fs := pickPx("font-size", 42, sty, rule)
	left := pickPx("left", 30, sty, rule)
	top := pickPx("top", 20, sty, rule)
	color := pickColor("color", sty, rule)
	if !color.Valid() {
		color = fallbackText
	}
	maxW := 800.0
	if sty.Has("max-width") {
		maxW = css.Px(sty.Val("max-width"))
	}
	bold := boldOf(true, sty, rule)
	r.text(left, top, maxW, fs*1.4, []*TextRun{run(dom.Text(t), fs*ptPerPx, bold, color)}, AlignLeft, false)
}

// footer supports two variants: a .footer-bar container with nested
// .page-number/.logo, or a .bottom-bar with the two as slide-level
// siblings.
func (r *slideRenderer) footer(slide *html.Node) {
	var fb *html.Node
	var rule css.Decl
	for _, class := range []string{"footer-bar", "bottom-bar"} {
		if el := dom.FirstByClass(slide, class); el != nil {
			fb = el
			rule = r.sheet.Rule("." + class)
			break
		}
	}
	if fb == nil {
		return
	}
	sty := inlineStyle(fb)
	h := pickPx("height", 32, sty, rule)
	bg := pickBackground(sty, rule)
	if !bg.Valid() {
		bg = fallbackLine
	}
	top := r.h - h
	r.rect(0, top, r.w, h, bg)

	// page-number and logo live inside the footer or as slide children
	pn := dom.FirstByClass(fb, "page-number")
	if pn == nil {
		pn = dom.FirstByClass(slide, "page-number")
	}
	if pn != nil {
		pnSty := inlineStyle(pn)
		pnRule := r.sheet.Rule(".page-number")
		color := pickColor("color", pnSty, pnRule)
		if !color.Valid() {
			color = fallbackWhite
		}
		fs := pickPx("font-size", 14, pnSty, pnRule) * ptPerPx
		left := pickPx("left", 15, pnSty, pnRule)
		r.text(left, top, 100, h, []*TextRun{run(dom.Text(pn), fs, false, color)}, AlignLeft, true)
	}
	lg := dom.FirstByClass(fb, "logo")
	if lg == nil {
		lg = dom.FirstByClass(slide, "logo")
	}
	if lg != nil {
		lgSty := inlineStyle(lg)
		lgRule := r.sheet.Rule(".logo")
		color := pickColor("color", lgSty, lgRule)
		if !color.Valid() {
			color = fallbackWhite
		}
		fs := pickPx("font-size", 18, lgSty, lgRule) * ptPerPx
		bold := boldOf(true, lgSty, lgRule)
		r.text(r.w-140, top, 120, h, []*TextRun{run(dom.Text(lg), fs, bold, color)}, AlignRight, true)
	}
}

// ── positioned content blocks ───────────────────────────────────────────

func (r *slideRenderer) blocks(slide *html.Node) {
	for _, div := range absoluteDivs(slide) {
		// footer wrappers are chrome, link and legend divs have their
		// own passes
		if dom.FirstByClass(div, "footer-bar") != nil || dom.FirstByClass(div, "bottom-bar") != nil {
			continue
		}
		st := inlineStyle(div)
		kind := Classify(div, st)
		r.logger.Debug("classified block", slog.String("kind", kind.String()))
		switch kind {
		case KindSectionWithProgressBar:
			r.sectionChrome(div, st)
			r.planning(div, st)
		case KindSectionWithTable:
			r.sectionChrome(div, st)
			r.sectionTable(div, st)
		case KindSectionPlainBody:
			r.sectionBody(div, st)
		case KindStandaloneTable:
			r.standaloneTable(div, st)
		case KindLegend:
			// rendered in the legend pass
		default:
			if hasLinkText(div) {
				// rendered in the links pass
				continue
			}
			r.generic(div, st)
		}
	}
}

func absoluteDivs(slide *html.Node) []*html.Node {
	return dom.FindAll(slide, func(n *html.Node) bool {
		if dom.Tag(n) != "div" || dom.Style(n) == "" {
			return false
		}
		return inlineStyle(n).Val("position") == "absolute"
	})
}

func hasLinkText(div *html.Node) bool {
	return dom.Find(div, func(n *html.Node) bool {
		return dom.Tag(n) == "a" && dom.HasClass(n, "link-text")
	}) != nil
}

// sectionChrome draws the separator line, the section title, and the
// section box outline shared by every section kind.
func (r *slideRenderer) sectionChrome(div *html.Node, st css.Decl) {
	top, left, w := css.Px(st.Val("top")), css.Px(st.Val("left")), r.blockWidth(st, 420)

	hdrSty := css.Decl{}
	if hdr := dom.FirstByClass(div, markerSectionHeader); hdr != nil {
		hdrSty = inlineStyle(hdr)
	}
	hdrRule := r.sheet.Rule("." + markerSectionHeader)
	sep := css.BorderColor(pick("border-top", hdrSty, hdrRule))
	if !sep.Valid() {
		sep = fallbackLine
	}
	r.rect(left, top, w, 1, sep)

	if title := dom.FirstByClass(div, "section-title"); title != nil {
		tSty := inlineStyle(title)
		tRule := r.sheet.Rule(".section-title")
		color := pickColor("color", tSty, tRule)
		if !color.Valid() {
			color = fallbackText
		}
		fs := pickPx("font-size", 13, tSty, tRule) * ptPerPx
		bold := boldOf(true, tSty, tRule)
		r.text(left, top+2, w, 16, []*TextRun{run(dom.Text(title), fs, bold, color)}, AlignLeft, false)
	}

	if box := dom.FirstByClass(div, markerSectionBox); box != nil {
		boxSty := inlineStyle(box)
		boxRule := r.sheet.Rule("." + markerSectionBox)
		bh := pickPx("height", 80, boxSty, boxRule)
		bg := pickBackground(boxSty, boxRule)
		if !bg.Valid() {
			bg = fallbackWhite
		}
		border := css.BorderColor(pick("border", boxSty, boxRule))
		if !border.Valid() {
			border = fallbackLine
		}
		r.add(&Rect{
			Geometry: r.geom(left, top+20, w, bh),
			Fill:     bg,
			Line:     border,
			LineW:    emuPerPt * 3 / 4,
		})
	}
}

// sectionTable renders a section whose box holds a table.
func (r *slideRenderer) sectionTable(div *html.Node, st css.Decl) {
	tblEl := dom.FirstByTag(div, "table")
	if tblEl == nil {
		return
	}
	dashed := r.tableDashed(tblEl)
	left, top := css.Px(st.Val("left")), css.Px(st.Val("top"))
	w := r.blockWidth(st, 420)
	if tbl := r.renderTable(tblEl, left, top+20, w, dashed); tbl != nil {
		r.add(tbl)
	}
}

// tableDashed checks the table's inline border and its class td rule for
// a dashed border style.
func (r *slideRenderer) tableDashed(tblEl *html.Node) bool {
	if css.Dashed(inlineStyle(tblEl).Val("border")) {
		return true
	}
	if classes := dom.Classes(tblEl); len(classes) > 0 {
		prefix := "." + classes[0]
		return css.Dashed(r.sheet.Rule(prefix).Val("border")) ||
			css.Dashed(r.sheet.Rule(prefix+" td").Val("border"))
	}
	return false
}

// sectionBody renders a plain section: chrome plus recursively rendered
// box content, trend rows, or a nested table when one appears without the
// progress shape.
func (r *slideRenderer) sectionBody(div *html.Node, st css.Decl) {
	r.sectionChrome(div, st)
	top, left, w := css.Px(st.Val("top")), css.Px(st.Val("left")), r.blockWidth(st, 420)
	box := dom.FirstByClass(div, markerSectionBox)
	boxTop := top + 20

	if box != nil {
		if tblEl := dom.FirstByTag(box, "table"); tblEl != nil {
			if tbl := r.renderTable(tblEl, left+2, boxTop+2, w-4, r.tableDashed(tblEl)); tbl != nil {
				r.add(tbl)
			}
			return
		}
	}

	// trend rows may live inside the box or directly under the block
	var trend *html.Node
	if box != nil {
		trend = dom.FirstByClass(box, "trend-box")
	}
	if trend == nil {
		trend = dom.FirstByClass(div, "trend-box")
	}
	if trend != nil {
		r.trendRow(trend, left, boxTop)
		return
	}

	if box == nil {
		return
	}
	r.boxContent(box, left, boxTop+6, w, 0, 8)
}

// trendRow lays out .trend-item cells horizontally with the stylesheet gap.
func (r *slideRenderer) trendRow(trend *html.Node, left, boxTop float64) {
	itemRule := r.sheet.Rule(".trend-item")
	fs := pickPx("font-size", 14, itemRule) * ptPerPx
	bold := boldOf(true, itemRule)
	color := pickColor("color", itemRule)
	if !color.Valid() {
		color = fallbackText
	}
	gap := pickPx("gap", 30, r.sheet.Rule(".trend-box"))
	x := left + 8
	for _, item := range dom.ByClass(trend, "trend-item") {
		sty := inlineStyle(item)
		itemColor := pickColor("color", sty)
		if !itemColor.Valid() {
			itemColor = color
		}
		itemFs := fs
		if sty.Has("font-size") {
			itemFs = css.Px(sty.Val("font-size")) * ptPerPx
		}
		r.text(x, boxTop+10, 80, 20, []*TextRun{run(dom.Text(item), itemFs, bold, itemColor)}, AlignLeft, false)
		x += 80 + gap
	}
}

// ── recursive box content ───────────────────────────────────────────────

var inlineTags = map[string]bool{
	"strong": true, "b": true, "em": true, "i": true,
	"span": true, "a": true, "br": true, "sub": true, "sup": true,
}

// boxContent renders the block-level children of a section box, walking
// labels, bullet items, lists, paragraphs and nested divs top to bottom.
// It returns the y position after the last rendered child.
func (r *slideRenderer) boxContent(parent *html.Node, left, y, w float64, indent, fsPt float64) float64 {
	xBase := left + 8 + indent
	wInner := w - 16 - indent
	const lineHDefault = 13.0

	bulletChar, bulletColor, ok := bulletFor(r.sheet, []string{"bullet-item"})
	if !ok || bulletChar == "" {
		bulletChar = "▪"
	}
	if !bulletColor.Valid() {
		bulletColor = fallbackText
	}
	bulletFs := pickPx("font-size", 10, r.sheet.Before("bullet-item")) * ptPerPx

	for _, child := range dom.Children(parent) {
		tag := dom.Tag(child)
		if inlineTags[tag] {
			continue
		}
		// full cascade: tag rule, then classes, then the style attribute
		cst := r.sheet.Resolve(tag, dom.Classes(child), dom.Style(child))
		mt := css.Px(cst.Val("margin-top"))
		mb := css.Px(cst.Val("margin-bottom"))
		y += mt

		lineH := lineHDefault
		if v := cst.Val("line-height"); v != "" {
			lh := css.Px(v)
			switch {
			case lh > 0 && lh < 5: // unitless multiplier
				lineH = lineHDefault * lh
			case lh >= 5:
				lineH = lh
			}
		}

		switch {
		case dom.HasClass(child, "budget-label"):
			y = r.label(child, cst, "budget-label", 12, xBase, y, wInner) + mb
		case dom.HasClass(child, "sub-label"):
			y = r.label(child, cst, "sub-label", 11, xBase, y, wInner) + mb
		case dom.HasClass(child, "bullet-item"):
			biRule := r.sheet.Rule(".bullet-item")
			fs := pickPx("font-size", 11, cst, biRule)
			fpt := fs * ptPerPx
			itemMb := pickPx("margin-bottom", 4, cst, biRule)
			r.text(xBase, y, 10, 12, []*TextRun{{Text: bulletChar, SizePt: bulletFs, Color: bulletColor, Glyph: true}}, AlignLeft, false)
			runs := recolor(renderRuns(child, inherited{SizePt: fpt}), fallbackText)
			r.text(xBase+12, y, wInner-12, 14, runs, AlignLeft, false)
			h := 14.0
			if fh := fpt * 1.8; fh > h {
				h = fh
			}
			y += h + itemMb
		case tag == "ul":
			y = r.list(child, cst, xBase, y, wInner, lineH, fsPt) + mb
		case tag == "p":
			if txt := dom.Text(child); txt != "" {
				runs := recolor(renderRuns(child, inherited{SizePt: fsPt}), fallbackText)
				r.text(xBase, y, wInner, 14, runs, AlignLeft, false)
				y += 14
			}
			y += mb
		case tag == "div":
			if hasBlockChildren(child) {
				childFs := fsPt
				if v := cst.Val("font-size"); v != "" {
					childFs = css.Px(v) * ptPerPx
				}
				childIndent := indent + css.Px(cst.Val("margin-left"))
				y = r.boxContent(child, left, y, w, childIndent, childFs)
			} else if txt := dom.Text(child); txt != "" {
				runs := recolor(renderRuns(child, inherited{SizePt: fsPt}), fallbackText)
				r.text(xBase, y, wInner, 14, runs, AlignLeft, false)
				y += 14
			}
			y += mb
		}
	}
	return y
}

// label renders a one-line bold label div (.budget-label, .sub-label).
func (r *slideRenderer) label(child *html.Node, cst css.Decl, class string, defFs float64, x, y, w float64) float64 {
	rule := r.sheet.Rule("." + class)
	fs := pickPx("font-size", defFs, cst, rule) * ptPerPx
	bold := boldOf(true, cst, rule)
	color := pickColor("color", cst, rule)
	if !color.Valid() {
		color = fallbackText
	}
	r.text(x, y, w, 14, []*TextRun{run(dom.Text(child), fs, bold, color)}, AlignLeft, false)
	return y + 14
}

// list renders a <ul>, each item bulleted with the glyph declared by the
// list class's ::before rule, or a plain bullet when absent.
func (r *slideRenderer) list(ul *html.Node, cst css.Decl, xBase, y, wInner, lineH, fsPt float64) float64 {
	ulMargin := css.Px(cst.Val("margin-left"))
	liX := xBase + ulMargin
	liW := wInner - ulMargin

	glyph, glyphColor, declared := bulletFor(r.sheet, dom.Classes(ul))
	for _, li := range dom.Children(ul) {
		if dom.Tag(li) != "li" {
			continue
		}
		if dom.Text(li) == "" {
			continue
		}
		if !declared {
			glyph, glyphColor, declared = bulletFor(r.sheet, dom.Classes(li))
		}
		g := glyph
		if g == "" {
			g = "•"
		}
		gc := glyphColor
		if !gc.Valid() {
			gc = pickColor("color", inlineStyle(li))
		}
		if !gc.Valid() {
			gc = fallbackText
		}
		r.text(liX, y, 10, lineH, []*TextRun{{Text: g, SizePt: 8, Color: gc, Glyph: true}}, AlignLeft, false)
		runs := recolor(renderRuns(li, inherited{SizePt: fsPt}), fallbackText)
		r.text(liX+12, y, liW-12, lineH, runs, AlignLeft, false)
		y += lineH
	}
	return y
}

func hasBlockChildren(n *html.Node) bool {
	for _, c := range dom.Children(n) {
		switch dom.Tag(c) {
		case "p", "ul", "div", "table":
			return true
		}
	}
	return false
}

// ── progress-bar sections ───────────────────────────────────────────────

// planning renders a section whose box alternates milestone text rows and
// progress bars.
func (r *slideRenderer) planning(div *html.Node, st css.Decl) {
	top, left, w := css.Px(st.Val("top")), css.Px(st.Val("left")), r.blockWidth(st, 900)
	box := dom.FirstByClass(div, markerSectionBox)
	if box == nil {
		// bars can sit directly under the block
		box = div
	}
	y := top + 28

	for _, child := range dom.Children(box) {
		if dom.HasClass(child, markerSectionHeader) {
			continue
		}
		if bar := findBar(child); bar != nil {
			fills, label := barParts(bar)
			y = r.progressBar(bar, fills, label, left, y, w)
			continue
		}

		if dom.Tag(child) != "div" || dom.Text(child) == "" {
			continue
		}
		if hasBlockChildren(child) {
			runs := recolor(renderInlineRuns(child, inherited{SizePt: 8}), fallbackText)
			r.text(left+12, y, w-24, 14, runs, AlignLeft, false)
			y += 16
			y = r.boxContent(child, left, y, w, 12, 8)
		} else {
			runs := recolor(renderRuns(child, inherited{SizePt: 8}), fallbackText)
			r.text(left+12, y, w-24, 14, runs, AlignLeft, false)
			y += 16
		}
	}
}

// findBar returns the topmost progress-bar div in the subtree rooted at n,
// including n itself.
func findBar(n *html.Node) *html.Node {
	if isProgressBar(n) {
		return n
	}
	for _, c := range dom.Children(n) {
		if b := findBar(c); b != nil {
			return b
		}
	}
	return nil
}

// barParts splits a progress bar's children into percentage fill divs and
// the optional percent label span.
func barParts(bar *html.Node) (fills []*html.Node, label *html.Node) {
	for _, c := range dom.Children(bar) {
		switch dom.Tag(c) {
		case "div":
			if css.ParseColor(inlineStyle(c).Background()).Valid() {
				fills = append(fills, c)
			}
		case "span":
			if label == nil {
				label = c
			}
		}
	}
	return fills, label
}

// progressBar draws the rounded track, one rounded fill per percentage
// div, and the right-aligned percent label. Returns the next y position.
func (r *slideRenderer) progressBar(bar *html.Node, fills []*html.Node, label *html.Node, left, y, w float64) float64 {
	iss := inlineStyle(bar)
	barH := pickPx("height", 16, iss)
	barW := w - 24
	track := css.ParseColor(iss.Background())
	r.add(&Rect{Geometry: r.geom(left+12, y, barW, barH), Fill: track, Rounded: true})

	for _, fd := range fills {
		fds := inlineStyle(fd)
		fill := css.ParseColor(fds.Background())
		if !fill.Valid() {
			continue
		}
		fw := barW * css.Percent(fds.Val("width")) / 100
		if fw > 0 {
			r.add(&Rect{Geometry: r.geom(left+12, y, fw, barH), Fill: fill, Rounded: true})
		}
	}

	if label != nil && strings.Contains(dom.Text(label), "%") {
		spSty := inlineStyle(label)
		fs := 8.0
		if spSty.Has("font-size") {
			fs = pickPx("font-size", 11, spSty) * ptPerPx
		}
		color := pickColor("color", spSty)
		if !color.Valid() {
			color = fallbackText
		}
		r.text(left+barW-60, y, 72, barH, []*TextRun{run(dom.Text(label), fs, false, color)}, AlignRight, false)
	}
	return y + barH + 8
}

// ── standalone tables, generic blocks ───────────────────────────────────

func (r *slideRenderer) standaloneTable(div *html.Node, st css.Decl) {
	tblEl := dom.FirstByTag(div, "table")
	if tblEl == nil {
		return
	}
	top, left, w := css.Px(st.Val("top")), css.Px(st.Val("left")), r.blockWidth(st, 900)
	if tbl := r.renderTable(tblEl, left, top, w, r.tableDashed(tblEl)); tbl != nil {
		r.add(tbl)
	}
}

// generic renders an unclassified positioned block as a styled container
// with its body content recursively rendered.
func (r *slideRenderer) generic(div *html.Node, st css.Decl) {
	top, left := css.Px(st.Val("top")), css.Px(st.Val("left"))
	w := r.blockWidth(st, 420)
	if bg := pickBackground(st); bg.Valid() && st.Has("height") {
		r.rect(left, top, w, css.Px(st.Val("height")), bg)
	}
	if hasBlockChildren(div) {
		r.boxContent(div, left, top+6, w, 0, 8)
		return
	}
	if txt := dom.Text(div); txt != "" {
		fs := pickPx("font-size", 11, st) * ptPerPx
		runs := recolor(renderRuns(div, inherited{SizePt: fs}), fallbackText)
		r.text(left, top, w, 14, runs, AlignLeft, false)
	}
}

// ── legend ──────────────────────────────────────────────────────────────

func (r *slideRenderer) legend(slide *html.Node) {
	for _, div := range absoluteDivs(slide) {
		st := inlineStyle(div)
		if Classify(div, st) != KindLegend {
			continue
		}
		bottom := pickPx("bottom", 50, st)
		left := pickPx("left", 30, st)
		fs := pickPx("font-size", 11, st) * ptPerPx
		color := pickColor("color", st)
		if !color.Valid() {
			color = fallbackMuted
		}
		ty := r.h - bottom - 20
		runs := recolor(renderRuns(div, inherited{SizePt: fs}), color)
		r.text(left, ty, 800, 20, runs, AlignLeft, false)
	}
}

// ── links ───────────────────────────────────────────────────────────────

func (r *slideRenderer) links(slide *html.Node) {
	linkRule := r.sheet.Rule(".link-text")
	linkColor := pickColor("color", linkRule)
	if !linkColor.Valid() {
		linkColor = fallbackText
	}
	linkFs := pickPx("font-size", 12, linkRule) * ptPerPx

	for _, div := range absoluteDivs(slide) {
		if !hasLinkText(div) || dom.FirstByClass(div, markerSectionHeader) != nil {
			continue
		}
		st := inlineStyle(div)
		bottom := pickPx("bottom", 60, st)
		left := pickPx("left", 30, st)
		ty := r.h - bottom - 15
		for _, a := range dom.ByTag(div, "a") {
			if !dom.HasClass(a, "link-text") {
				continue
			}
			aSty := inlineStyle(a)
			color := pickColor("color", aSty)
			if !color.Valid() {
				color = linkColor
			}
			fs := linkFs
			if aSty.Has("font-size") {
				fs = css.Px(aSty.Val("font-size")) * ptPerPx
			}
			rn := run(dom.Text(a), fs, false, color)
			rn.Underline = true
			r.text(left, ty, 300, 15, []*TextRun{rn}, AlignLeft, false)
		}
	}
}
