package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func buildTestPresentation() *Presentation {
	p := New(9144000, 5143500)
	p.Font = "Arial"
	s := p.AddSlide()
	s.Add(&Rect{
		Frame: Frame{X: 0, Y: 0, W: 9144000, H: 76200},
		Fill:  "1A5276",
	})
	s.Add(&TextBox{
		Frame:  Frame{X: 285750, Y: 190500, W: 7620000, H: 571500},
		Middle: true,
		Paragraphs: []*Paragraph{{
			Align: "left",
			Runs: []*Run{
				{Text: "Quarterly Review", Bold: true, Color: "1A5276", SizePt: 31.5},
				{Break: true},
				{Text: "2026", SizePt: 10.5},
			},
		}},
	})
	s.Add(&Table{
		Frame:     Frame{X: 285750, Y: 2857500, W: 8572500, H: 419100},
		ColWidths: []int64{2857500, 2857500, 2857500},
		RowHeight: 209550,
		Border:    "CCCCCC",
		Rows: [][]*Cell{
			{
				{Runs: []*Run{{Text: "Team", Bold: true, Color: "FFFFFF", SizePt: 8.25}}, Fill: "1A5276"},
				{Runs: []*Run{{Text: "Load", Bold: true, Color: "FFFFFF", SizePt: 8.25}}, Fill: "1A5276"},
				{Runs: []*Run{{Text: "Mood", Bold: true, Color: "FFFFFF", SizePt: 8.25}}, Fill: "1A5276"},
			},
			{
				{Runs: []*Run{{Text: "Platform", SizePt: 8.25}}},
				{Runs: []*Run{{Text: "80%", SizePt: 8.25}}, Align: "center"},
				{Runs: []*Run{{Text: "●", Color: "4CAF50", SizePt: 10}}},
			},
		},
	})
	p.AddSlide() // empty trailing slide
	return p
}

func writeAndReopen(t *testing.T, p *Presentation) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen zip: %v", err)
	}
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	f, err := zr.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}

func TestWriteParts(t *testing.T) {
	zr := writeAndReopen(t, buildTestPresentation())
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/_rels/slide2.xml.rels",
	} {
		if _, err := zr.Open(name); err != nil {
			t.Errorf("missing part %s: %v", name, err)
		}
	}
}

func TestWritePresentationXML(t *testing.T) {
	zr := writeAndReopen(t, buildTestPresentation())
	doc := etree.NewDocument()
	if err := doc.ReadFromString(readPart(t, zr, "ppt/presentation.xml")); err != nil {
		t.Fatalf("parse presentation.xml: %v", err)
	}
	sz := doc.FindElement("//p:sldSz")
	if sz == nil {
		t.Fatal("no p:sldSz element")
	}
	if got := sz.SelectAttrValue("cx", ""); got != "9144000" {
		t.Errorf("sldSz cx = %s, want 9144000", got)
	}
	if got := sz.SelectAttrValue("cy", ""); got != "5143500" {
		t.Errorf("sldSz cy = %s, want 5143500", got)
	}
	if ids := doc.FindElements("//p:sldId"); len(ids) != 2 {
		t.Errorf("slide ids = %d, want 2", len(ids))
	}
}

func TestWriteSlideXML(t *testing.T) {
	zr := writeAndReopen(t, buildTestPresentation())
	raw := readPart(t, zr, "ppt/slides/slide1.xml")
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		t.Fatalf("parse slide1.xml: %v", err)
	}

	sps := doc.FindElements("//p:sp")
	if len(sps) != 2 {
		t.Fatalf("p:sp count = %d, want 2 (rect and text box)", len(sps))
	}

	rect := sps[0]
	if geom := rect.FindElement(".//a:prstGeom"); geom == nil || geom.SelectAttrValue("prst", "") != "rect" {
		t.Error("rect shape missing prstGeom rect")
	}
	if fill := rect.FindElement(".//a:srgbClr"); fill == nil || fill.SelectAttrValue("val", "") != "1A5276" {
		t.Error("rect fill color not written")
	}

	text := sps[1]
	if body := text.FindElement(".//a:bodyPr"); body == nil || body.SelectAttrValue("anchor", "") != "ctr" {
		t.Error("middle text box missing anchor=ctr")
	}
	runs := text.FindElements(".//a:r")
	if len(runs) != 2 {
		t.Fatalf("run count = %d, want 2", len(runs))
	}
	rPr := runs[0].FindElement("a:rPr")
	if rPr.SelectAttrValue("b", "") != "1" {
		t.Error("bold run missing b=1")
	}
	if rPr.SelectAttrValue("sz", "") != "3150" {
		t.Errorf("run size = %s, want 3150", rPr.SelectAttrValue("sz", ""))
	}
	if latin := rPr.FindElement("a:latin"); latin == nil || latin.SelectAttrValue("typeface", "") != "Arial" {
		t.Error("run missing default typeface")
	}
	if br := text.FindElements(".//a:br"); len(br) != 1 {
		t.Errorf("break count = %d, want 1", len(br))
	}

	if !strings.Contains(raw, "Quarterly Review") {
		t.Error("slide text missing")
	}

	tbl := doc.FindElement("//a:tbl")
	if tbl == nil {
		t.Fatal("table not written")
	}
	if cols := tbl.FindElements("a:tblGrid/a:gridCol"); len(cols) != 3 {
		t.Errorf("gridCol count = %d, want 3", len(cols))
	}
	rows := tbl.FindElements("a:tr")
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	firstCell := rows[0].FindElement("a:tc")
	tcPr := firstCell.FindElement("a:tcPr")
	if tcPr == nil {
		t.Fatal("cell missing tcPr")
	}
	if border := tcPr.FindElement("a:lnL/a:solidFill/a:srgbClr"); border == nil || border.SelectAttrValue("val", "") != "CCCCCC" {
		t.Error("cell border color not written")
	}
	if fill := tcPr.FindElement("a:solidFill/a:srgbClr"); fill == nil || fill.SelectAttrValue("val", "") != "1A5276" {
		t.Error("header cell fill not written")
	}
}

func TestWriteEmptyColor(t *testing.T) {
	p := New(9144000, 5143500)
	s := p.AddSlide()
	s.Add(&Rect{Frame: Frame{W: 100, H: 100}})
	zr := writeAndReopen(t, p)
	raw := readPart(t, zr, "ppt/slides/slide1.xml")
	if !strings.Contains(raw, "a:noFill") {
		t.Error("colorless rect must carry a:noFill")
	}
	if strings.Contains(raw, "a:ln>") {
		t.Error("rect without line color must not carry an outline")
	}
}
