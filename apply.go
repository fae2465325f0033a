package htmldeck

import (
	"io"

	"github.com/k1LoW/errors"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/pptx"
)

// WritePPTX serializes the deck as a PPTX package, mapping each draw
// command onto a shape in the slide's paint order.
func (d *Deck) WritePPTX(w io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	pres := pptx.New(d.Scale.EMU(d.WidthPx), d.Scale.EMU(d.HeightPx))
	pres.Font = d.Font
	for _, slide := range d.Slides {
		out := pres.AddSlide()
		for _, cmd := range slide.Commands {
			if sh := d.shape(cmd); sh != nil {
				out.Add(sh)
			}
		}
	}
	return pres.Write(w)
}

func (d *Deck) shape(cmd Command) pptx.Shape {
	switch v := cmd.(type) {
	case *Rect:
		return &pptx.Rect{
			Frame:   frame(v.Geometry),
			Fill:    hexOf(v.Fill),
			Line:    hexOf(v.Line),
			LineW:   v.LineW,
			Rounded: v.Rounded,
		}
	case *TextBox:
		tb := &pptx.TextBox{
			Frame:  frame(v.Geometry),
			Middle: v.Middle,
			NoWrap: v.NoWrap,
		}
		for _, p := range v.Paragraphs {
			tb.Paragraphs = append(tb.Paragraphs, &pptx.Paragraph{
				Runs:  runsOf(p.Runs),
				Align: string(p.Align),
			})
		}
		return tb
	case *Table:
		tbl := &pptx.Table{
			Frame:     frame(v.Geometry),
			ColWidths: v.ColWidths,
			RowHeight: d.Scale.EMU(tableRowHeightPx),
			Border:    hexOf(v.Border),
			Dashed:    v.Dashed,
		}
		for _, row := range v.Rows {
			var cells []*pptx.Cell
			for _, c := range row.Cells {
				cells = append(cells, &pptx.Cell{
					Runs:   runsOf(c.Runs),
					Align:  string(c.Align),
					Fill:   hexOf(c.Fill),
					Middle: true,
				})
			}
			tbl.Rows = append(tbl.Rows, cells)
		}
		return tbl
	}
	return nil
}

func frame(g Geometry) pptx.Frame {
	return pptx.Frame{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

func runsOf(runs []*TextRun) []*pptx.Run {
	out := make([]*pptx.Run, 0, len(runs))
	for _, r := range runs {
		out = append(out, &pptx.Run{
			Text:      r.Text,
			Bold:      r.Bold,
			Italic:    r.Italic,
			Underline: r.Underline,
			Color:     hexOf(r.Color),
			SizePt:    r.SizePt,
			Break:     r.Break,
		})
	}
	return out
}

func hexOf(c css.Color) string {
	if !c.Valid() {
		return ""
	}
	return c.Hex()
}
