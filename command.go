package htmldeck

import (
	"math"

	"github.com/deckforge/htmldeck/css"
)

// EMUPerInch is the OOXML English Metric Unit density.
const EMUPerInch = 914400

// Scale converts CSS pixels into slide units (EMU). It is derived once per
// document from the slide's pixel width and its physical width in inches.
type Scale float64

// NewScale returns the scale for a slide of widthPx CSS pixels rendered at
// widthInches physical width.
func NewScale(widthPx, widthInches float64) Scale {
	return Scale(widthInches / widthPx * EMUPerInch)
}

// EMU converts a pixel length to EMU.
func (s Scale) EMU(px float64) int64 {
	return int64(math.Round(float64(s) * px))
}

// Geometry is an absolute shape frame in EMU, relative to the slide's
// top-left origin. Width and height are never negative.
type Geometry struct {
	X, Y, W, H int64
}

// Alignment of a paragraph or table cell.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Command is one primitive visual instruction for a slide. A slide's
// output is an ordered Command sequence; later commands paint over
// earlier ones.
type Command interface {
	isCommand()
}

// Rect paints a filled and/or outlined rectangle.
type Rect struct {
	Geometry
	Fill    css.Color
	Line    css.Color
	LineW   int64 // EMU; 0 means hairline default when Line is set
	Rounded bool
}

// TextBox paints a text frame holding styled paragraphs.
type TextBox struct {
	Geometry
	Paragraphs []*Paragraph
	Middle     bool // vertically center the text in the frame
	NoWrap     bool
}

// Paragraph is one line group within a text box.
type Paragraph struct {
	Runs  []*TextRun
	Align Align
}

// TextRun is a styled fragment of text within a paragraph.
type TextRun struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Color     css.Color // no-color means the consumer's default text color
	SizePt    float64
	Glyph     bool // synthetic bullet or circle glyph, painted in Color
	Break     bool // explicit line break; Text is ignored
}

// Table paints a grid of styled cells.
type Table struct {
	Geometry
	ColWidths []int64 // EMU, one per column
	Rows      []*TableRow
	Border    css.Color
	Dashed    bool
}

// TableRow is one row of a table command.
type TableRow struct {
	Cells []*TableCell
}

// TableCell is one styled cell.
type TableCell struct {
	Runs   []*TextRun
	Align  Align
	Fill   css.Color
	Header bool
}

func (*Rect) isCommand()    {}
func (*TextBox) isCommand() {}
func (*Table) isCommand()   {}

// Slide is the ordered draw-command sequence of one rendered slide.
type Slide struct {
	Commands []Command
}

type Slides []*Slide

// Deck is a converted document: the document-level values every consumer
// needs before any geometry work, plus the rendered slides in order.
type Deck struct {
	Font     string
	WidthPx  float64
	HeightPx float64
	Scale    Scale
	Slides   Slides
}

// textBox builds a single-paragraph text box from runs, the shorthand the
// renderer uses for labels and titles.
func textBox(g Geometry, runs []*TextRun, align Align, middle bool) *TextBox {
	return &TextBox{
		Geometry:   g,
		Paragraphs: []*Paragraph{{Runs: runs, Align: align}},
		Middle:     middle,
	}
}

// run builds a plain styled run.
func run(text string, sizePt float64, bold bool, color css.Color) *TextRun {
	return &TextRun{Text: text, SizePt: sizePt, Bold: bold, Color: color}
}
