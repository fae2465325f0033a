package htmldeck

import (
	"golang.org/x/net/html"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

// tableRowHeightPx is the nominal row height used for table frames.
const tableRowHeightPx = 22

// renderTable converts a <table> element into a Table command at the given
// pixel position and total width. Column widths come from the first row's
// declared cell widths; columns without a declared width share the
// remaining space equally. Cell styling cascades inline > cell class >
// table-class th/td rules > table element.
func (r *slideRenderer) renderTable(tableEl *html.Node, left, top, width float64, dashed bool) *Table {
	trs := dom.ByTag(tableEl, "tr")
	if len(trs) == 0 {
		return nil
	}
	firstCells := rowCells(trs[0])
	nCols := len(firstCells)
	if nCols == 0 {
		return nil
	}

	tblSty := inlineStyle(tableEl)
	tblFsPx := pickPx("font-size", 11, tblSty)
	tblBorder := css.BorderColor(tblSty.Val("border"))
	if !tblBorder.Valid() {
		tblBorder = fallbackLine
	}

	// Column widths: declared first-row widths, equal split of the rest.
	explicit := make([]float64, nCols)
	var total float64
	auto := 0
	for i, c := range firstCells {
		explicit[i] = css.Px(inlineStyle(c).Val("width"))
		if explicit[i] > 0 {
			total += explicit[i]
		} else {
			auto++
		}
	}
	autoW := 0.0
	if auto > 0 {
		autoW = (width - total) / float64(auto)
	}
	colWidths := make([]int64, nCols)
	for i, w := range explicit {
		if w <= 0 {
			w = autoW
		}
		colWidths[i] = r.scale.EMU(w)
	}

	// Table-class th/td rules, e.g. ".workload th".
	var thCSS, tdCSS css.Decl
	if classes := dom.Classes(tableEl); len(classes) > 0 {
		prefix := "." + classes[0]
		thCSS = r.sheet.Rule(prefix + " th")
		tdCSS = r.sheet.Rule(prefix + " td")
	}
	if !dashed {
		dashed = css.Dashed(tdCSS.Val("border")) || css.Dashed(thCSS.Val("border"))
	}
	cellBorder := css.BorderColor(tdCSS.Val("border"))
	if !cellBorder.Valid() {
		cellBorder = css.BorderColor(thCSS.Val("border"))
	}
	if !cellBorder.Valid() {
		cellBorder = tblBorder
	}

	tbl := &Table{
		Geometry:  r.geom(left, top, width, float64(len(trs))*tableRowHeightPx+4),
		ColWidths: colWidths,
		Border:    cellBorder,
		Dashed:    dashed,
	}

	for _, tr := range trs {
		trSty := inlineStyle(tr)
		trBg := css.ParseColor(trSty.Val("background"))
		trColor := css.ParseColor(trSty.Val("color"))
		row := &TableRow{}
		for ci, td := range rowCells(tr) {
			if ci >= nCols {
				break
			}
			row.Cells = append(row.Cells, r.renderCell(td, trBg, trColor, tblFsPx, thCSS, tdCSS))
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

func (r *slideRenderer) renderCell(td *html.Node, trBg, trColor css.Color, tblFsPx float64, thCSS, tdCSS css.Decl) *TableCell {
	header := dom.Tag(td) == "th"
	ds := inlineStyle(td)
	tagCSS := tdCSS
	if header {
		tagCSS = thCSS
	}
	clsCSS := css.Decl{}
	for _, c := range dom.Classes(td) {
		for k, v := range r.sheet.Rule("." + c) {
			clsCSS[k] = v
		}
	}

	fsPx := pickPx("font-size", 0, ds, clsCSS, tagCSS)
	if fsPx == 0 {
		fsPx = tblFsPx
	}
	fsPt := fsPx * ptPerPx
	if fsPt < 6 {
		fsPt = 8
	}

	align := AlignLeft
	switch pick("text-align", ds, clsCSS, tagCSS) {
	case "center":
		align = AlignCenter
	case "right":
		align = AlignRight
	}

	cell := &TableCell{Align: align, Header: header}

	// Colored-circle indicator cells render a single glyph run.
	if cc := circleColor(td); cc.Valid() {
		cell.Runs = []*TextRun{{Text: circleGlyph, Color: cc, SizePt: 10, Glyph: true}}
	} else {
		color := pickColor("color", ds, clsCSS, tagCSS)
		if !color.Valid() {
			color = trColor
		}
		if !color.Valid() {
			color = fallbackText
		}
		bold := header
		if pick("font-weight", ds, clsCSS, tagCSS) != "" {
			bold = boldOf(header, ds, clsCSS, tagCSS)
		}
		cell.Runs = []*TextRun{run(dom.Text(td), fsPt, bold, color)}
	}

	// Fills: header cells prefer their own background, then the row's;
	// data cells the other way round. A dark header fill flips the text
	// to white when no explicit color was declared.
	cellBg := pickBackground(ds, clsCSS, tagCSS)
	switch {
	case header:
		bg := cellBg
		if !bg.Valid() {
			bg = trBg
		}
		if bg.Valid() {
			cell.Fill = bg
			if bg.Dark() && !pickColor("color", ds, clsCSS).Valid() {
				for _, rn := range cell.Runs {
					if !rn.Glyph {
						rn.Color = fallbackWhite
					}
				}
			}
		}
	case trBg.Valid():
		cell.Fill = trBg
	case cellBg.Valid():
		cell.Fill = cellBg
	}
	return cell
}

// rowCells returns the th/td element children of a tr.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for _, c := range dom.Children(tr) {
		if t := dom.Tag(c); t == "th" || t == "td" {
			cells = append(cells, c)
		}
	}
	return cells
}

// circleColor finds the color of an inline circle indicator inside a cell:
// a styled span with a background fill, or a colored span holding the
// bullet character.
func circleColor(el *html.Node) css.Color {
	for _, span := range dom.ByTag(el, "span") {
		st := inlineStyle(span)
		if len(st) == 0 {
			continue
		}
		if c := css.ParseColor(st.Background()); c.Valid() {
			return c
		}
		if st.Has("color") && ownText(span) == circleGlyph {
			if c := css.ParseColor(st.Val("color")); c.Valid() {
				return c
			}
		}
	}
	return css.Color{}
}
