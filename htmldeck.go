package htmldeck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/k1LoW/errors"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/deckforge/htmldeck/css"
	"github.com/deckforge/htmldeck/dom"
)

const (
	defaultWidthPx     = 960.0
	defaultHeightPx    = 540.0
	defaultWidthInches = 10.0
	defaultFont        = "Arial"
)

// genericFonts are font-family entries that name platform lookups rather
// than real typefaces. Font resolution skips them.
var genericFonts = map[string]bool{
	"-apple-system":      true,
	"blinkmacsystemfont": true,
	"system-ui":          true,
	"sans-serif":         true,
	"serif":              true,
	"monospace":          true,
}

// Converter turns HTML slide documents into decks of absolute-positioned
// draw commands.
type Converter struct {
	widthPx     float64
	heightPx    float64
	widthInches float64
	font        string
	logger      *slog.Logger
}

type Option func(*Converter) error

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) error {
		c.logger = logger
		return nil
	}
}

// WithSlideSize sets the expected slide size in CSS pixels.
func WithSlideSize(widthPx, heightPx float64) Option {
	return func(c *Converter) error {
		if widthPx <= 0 || heightPx <= 0 {
			return fmt.Errorf("invalid slide size: %gx%g", widthPx, heightPx)
		}
		c.widthPx = widthPx
		c.heightPx = heightPx
		return nil
	}
}

// WithPhysicalWidth sets the physical slide width in inches used to derive
// the pixel-to-EMU scale.
func WithPhysicalWidth(inches float64) Option {
	return func(c *Converter) error {
		if inches <= 0 {
			return fmt.Errorf("invalid physical width: %g", inches)
		}
		c.widthInches = inches
		return nil
	}
}

// WithFallbackFont sets the font used when the document declares none.
func WithFallbackFont(name string) Option {
	return func(c *Converter) error {
		if name == "" {
			return fmt.Errorf("empty fallback font")
		}
		c.font = name
		return nil
	}
}

// New creates a new Converter.
func New(opts ...Option) (_ *Converter, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	c := &Converter{
		widthPx:     defaultWidthPx,
		heightPx:    defaultHeightPx,
		widthInches: defaultWidthInches,
		font:        defaultFont,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return c, nil
}

// Parse reads an HTML slide document and renders every .slide container
// into its draw-command sequence. Slides render independently and in
// parallel; the returned deck keeps document order.
func (c *Converter) Parse(ctx context.Context, in io.Reader) (_ *Deck, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	doc, err := html.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	sheet := css.Parse(styleText(doc))
	slides := dom.ByClass(doc, "slide")
	if len(slides) == 0 {
		return nil, fmt.Errorf("no slide containers found")
	}

	scale := NewScale(c.widthPx, c.widthInches)
	deck := &Deck{
		Font:     c.resolveFont(sheet),
		WidthPx:  c.widthPx,
		HeightPx: c.heightPx,
		Scale:    scale,
		Slides:   make(Slides, len(slides)),
	}

	eg, _ := errgroup.WithContext(ctx)
	for i, el := range slides {
		eg.Go(func() error {
			r := newSlideRenderer(sheet, c.widthPx, c.heightPx, scale, c.logger)
			deck.Slides[i] = r.render(el)
			c.logger.Info("rendered slide", slog.Int("index", i+1), slog.Int("total", len(slides)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Convert parses an HTML slide document and writes the resulting PPTX.
func (c *Converter) Convert(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	deck, err := c.Parse(ctx, in)
	if err != nil {
		return err
	}
	if err := deck.WritePPTX(out); err != nil {
		return err
	}
	c.logger.Info("convert completed", slog.Int("slides", len(deck.Slides)))
	return nil
}

// styleText concatenates the text of every <style> element in the document.
func styleText(doc *html.Node) string {
	var b strings.Builder
	for _, st := range dom.ByTag(doc, "style") {
		for c := st.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// resolveFont picks the first concrete family declared by the body or
// .slide rule, skipping generic platform names. Quotes around family
// names are dropped.
func (c *Converter) resolveFont(sheet *css.Stylesheet) string {
	for _, sel := range []string{"body", ".slide"} {
		fam := sheet.Rule(sel).Val("font-family")
		for _, part := range strings.Split(fam, ",") {
			name := strings.Trim(strings.TrimSpace(part), `"'`)
			if name == "" || genericFonts[strings.ToLower(name)] {
				continue
			}
			return name
		}
	}
	return c.font
}
