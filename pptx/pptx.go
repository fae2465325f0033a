// Package pptx writes minimal PresentationML documents: slides holding
// absolutely positioned rectangles, text boxes and tables. Colors are
// RRGGBB hex strings; an empty color means "none". All lengths are EMU.
package pptx

// Presentation is a deck under construction.
type Presentation struct {
	Width  int64
	Height int64
	Font   string // default typeface for every run without its own

	slides []*Slide
}

// New returns an empty presentation with the given slide size in EMU.
func New(width, height int64) *Presentation {
	return &Presentation{Width: width, Height: height}
}

// AddSlide appends an empty slide and returns it.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// Slides returns the slides in order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// Slide is an ordered shape list. Later shapes paint over earlier ones.
type Slide struct {
	shapes []Shape
}

// Add appends a shape to the slide.
func (s *Slide) Add(sh Shape) {
	s.shapes = append(s.shapes, sh)
}

// Shapes returns the slide's shapes in paint order.
func (s *Slide) Shapes() []Shape {
	return s.shapes
}

// Shape is one drawable element on a slide.
type Shape interface {
	isShape()
}

// Frame is a shape's absolute position and size in EMU.
type Frame struct {
	X, Y, W, H int64
}

// Rect is a filled and/or outlined rectangle.
type Rect struct {
	Frame
	Fill    string
	Line    string
	LineW   int64 // EMU, 0 means default when Line is set
	Rounded bool
}

// TextBox is a text frame with styled paragraphs.
type TextBox struct {
	Frame
	Paragraphs []*Paragraph
	Middle     bool // anchor text to the vertical center
	NoWrap     bool
}

// Paragraph is one aligned group of runs.
type Paragraph struct {
	Runs  []*Run
	Align string // "", "left", "center", "right"
}

// Run is a styled text fragment. A Break run produces a line break and
// carries no text.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	SizePt    float64
	Font      string // overrides the presentation default
	Break     bool
}

// Table is a grid frame.
type Table struct {
	Frame
	ColWidths []int64
	RowHeight int64
	Rows      [][]*Cell
	Border    string
	Dashed    bool
}

// Cell is one styled table cell.
type Cell struct {
	Runs   []*Run
	Align  string
	Fill   string
	Middle bool
}

func (*Rect) isShape()    {}
func (*TextBox) isShape() {}
func (*Table) isShape()   {}
