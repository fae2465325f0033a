package htmldeck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/deckforge/htmldeck/css"
)

var cmpColors = cmpopts.EquateComparable(css.Color{})

func TestRenderRuns(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []*TextRun
	}{
		{
			"plain text",
			`<div class="block">hello world</div>`,
			[]*TextRun{{Text: "hello world", SizePt: 10}},
		},
		{
			"bold inside colored span keeps both",
			`<div class="block"><span style="color: #E74C3C">at <strong>risk</strong></span></div>`,
			[]*TextRun{
				{Text: "at", Color: css.RGB(0xE7, 0x4C, 0x3C), SizePt: 10},
				{Text: "risk", Bold: true, Color: css.RGB(0xE7, 0x4C, 0x3C), SizePt: 10},
			},
		},
		{
			"italic and nested emphasis",
			`<div class="block"><em>soft <b>hard</b></em></div>`,
			[]*TextRun{
				{Text: "soft", Italic: true, SizePt: 10},
				{Text: "hard", Bold: true, Italic: true, SizePt: 10},
			},
		},
		{
			"line break",
			`<div class="block">one<br>two</div>`,
			[]*TextRun{
				{Text: "one", SizePt: 10},
				{Break: true},
				{Text: "two", SizePt: 10},
			},
		},
		{
			"span font-size override",
			`<div class="block"><span style="font-size: 16px">big</span></div>`,
			[]*TextRun{{Text: "big", SizePt: 12}},
		},
		{
			"circle swatch span",
			`<div class="block"><span style="background: #4CAF50; border-radius: 50%"></span> done</div>`,
			[]*TextRun{
				{Text: "●", Color: css.RGB(0x4C, 0xAF, 0x50), SizePt: 10, Glyph: true},
				{Text: "done", SizePt: 10},
			},
		},
		{
			"mood dot span",
			`<div class="block"><span style="color: #FFC107">●</span> watch</div>`,
			[]*TextRun{
				{Text: "●", Color: css.RGB(0xFF, 0xC1, 0x07), SizePt: 10, Glyph: true},
				{Text: "watch", SizePt: 10},
			},
		},
		{
			"whitespace collapses",
			`<div class="block">  a
				b  </div>`,
			[]*TextRun{{Text: "a b", SizePt: 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := block(t, tt.html)
			got := renderRuns(b, inherited{SizePt: 10})
			if diff := cmp.Diff(tt.want, got, cmpColors); diff != "" {
				t.Errorf("renderRuns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderInlineRunsSkipsBlocks(t *testing.T) {
	b := block(t, `<div class="block">lead <strong>text</strong><ul><li>item</li></ul><div>nested</div></div>`)
	got := renderInlineRuns(b, inherited{SizePt: 10})
	want := []*TextRun{
		{Text: "lead", SizePt: 10},
		{Text: "text", Bold: true, SizePt: 10},
	}
	if diff := cmp.Diff(want, got, cmpColors); diff != "" {
		t.Errorf("renderInlineRuns() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecolor(t *testing.T) {
	runs := []*TextRun{
		{Text: "plain"},
		{Text: "colored", Color: css.RGB(1, 2, 3)},
		{Text: "●", Glyph: true},
	}
	def := css.RGB(0x66, 0x66, 0x66)
	recolor(runs, def)
	if runs[0].Color != def {
		t.Errorf("plain run color = %v, want default", runs[0].Color)
	}
	if runs[1].Color != css.RGB(1, 2, 3) {
		t.Errorf("explicit color overwritten: %v", runs[1].Color)
	}
	if runs[2].Color.Valid() {
		t.Error("glyph run must keep its sentinel color")
	}
}

func TestBulletFor(t *testing.T) {
	sheet := css.Parse(`
.bullet-item::before { content: "\25AA"; color: #E74C3C; }
.checked::before { content: "✓"; }
`)
	tests := []struct {
		name      string
		classes   []string
		wantGlyph string
		wantOK    bool
	}{
		{"declared glyph and color", []string{"bullet-item"}, "▪", true},
		{"glyph without color", []string{"checked"}, "✓", true},
		{"first declared class wins", []string{"missing", "bullet-item"}, "▪", true},
		{"undeclared", []string{"missing"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyph, _, ok := bulletFor(sheet, tt.classes)
			if glyph != tt.wantGlyph || ok != tt.wantOK {
				t.Errorf("bulletFor() = (%q, %v), want (%q, %v)", glyph, ok, tt.wantGlyph, tt.wantOK)
			}
		})
	}
	if _, color, _ := bulletFor(sheet, []string{"bullet-item"}); color != css.RGB(0xE7, 0x4C, 0x3C) {
		t.Errorf("bulletFor() color = %v, want #E74C3C", color)
	}
}
