package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// OOXML namespace URIs.
const (
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationship = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsOfficeRel    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsCoreProps    = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedPr   = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDCElements   = "http://purl.org/dc/elements/1.1/"
	nsDCTerms      = "http://purl.org/dc/terms/"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeOfficeDoc   = nsOfficeRel + "/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = nsOfficeRel + "/extended-properties"
	relTypeSlideMaster = nsOfficeRel + "/slideMaster"
	relTypeSlideLayout = nsOfficeRel + "/slideLayout"
	relTypeSlide       = nsOfficeRel + "/slide"
	relTypeTheme       = nsOfficeRel + "/theme"
	relTypePresProps   = nsOfficeRel + "/presProps"
	relTypeViewProps   = nsOfficeRel + "/viewProps"
	relTypeTableStyles = nsOfficeRel + "/tableStyles"
)

const emuPerPt = 12700

// Write serializes the presentation as a PPTX package.
func (p *Presentation) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	pw := &pkgWriter{p: p, zw: zw}

	parts := []func() error{
		pw.contentTypes,
		pw.rootRels,
		pw.coreProps,
		pw.appProps,
		pw.presentation,
		pw.presentationRels,
		pw.presProps,
		pw.viewProps,
		pw.tableStyles,
		pw.slideMaster,
		pw.slideMasterRels,
		pw.slideLayout,
		pw.slideLayoutRels,
		pw.theme,
	}
	for _, part := range parts {
		if err := part(); err != nil {
			return err
		}
	}
	for i, s := range p.slides {
		if err := pw.slide(s, i+1); err != nil {
			return err
		}
		if err := pw.slideRels(i + 1); err != nil {
			return err
		}
	}
	return zw.Close()
}

type pkgWriter struct {
	p       *Presentation
	zw      *zip.Writer
	shapeID int
}

func (pw *pkgWriter) part(name string, doc *etree.Document) error {
	doc.WriteSettings = etree.WriteSettings{CanonicalEndTags: true}
	f, err := pw.zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

func newDoc(root string, ns map[string]string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	el := doc.CreateElement(root)
	for k, v := range ns {
		el.CreateAttr(k, v)
	}
	return doc, el
}

func (pw *pkgWriter) contentTypes() error {
	doc, types := newDoc("Types", map[string]string{"xmlns": nsContentTypes})
	def := func(ext, ct string) {
		d := types.CreateElement("Default")
		d.CreateAttr("Extension", ext)
		d.CreateAttr("ContentType", ct)
	}
	override := func(part, ct string) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", part)
		o.CreateAttr("ContentType", ct)
	}
	def("rels", "application/vnd.openxmlformats-package.relationships+xml")
	def("xml", "application/xml")
	override("/ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml")
	override("/ppt/presProps.xml", "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml")
	override("/ppt/viewProps.xml", "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml")
	override("/ppt/tableStyles.xml", "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml")
	override("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	override("/ppt/slideMasters/slideMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")
	override("/ppt/slideLayouts/slideLayout1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
	for i := range pw.p.slides {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i+1), "application/vnd.openxmlformats-officedocument.presentationml.slide+xml")
	}
	override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	override("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	return pw.part("[Content_Types].xml", doc)
}

func addRel(rels *etree.Element, id, typ, target string) {
	r := rels.CreateElement("Relationship")
	r.CreateAttr("Id", id)
	r.CreateAttr("Type", typ)
	r.CreateAttr("Target", target)
}

func (pw *pkgWriter) rootRels() error {
	doc, rels := newDoc("Relationships", map[string]string{"xmlns": nsRelationship})
	addRel(rels, "rId1", relTypeOfficeDoc, "ppt/presentation.xml")
	addRel(rels, "rId2", relTypeCoreProps, "docProps/core.xml")
	addRel(rels, "rId3", relTypeExtProps, "docProps/app.xml")
	return pw.part("_rels/.rels", doc)
}

func (pw *pkgWriter) coreProps() error {
	doc, core := newDoc("cp:coreProperties", map[string]string{
		"xmlns:cp":      nsCoreProps,
		"xmlns:dc":      nsDCElements,
		"xmlns:dcterms": nsDCTerms,
		"xmlns:xsi":     nsXSI,
	})
	now := time.Now().UTC().Format(time.RFC3339)
	created := core.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(now)
	modified := core.CreateElement("dcterms:modified")
	modified.CreateAttr("xsi:type", "dcterms:W3CDTF")
	modified.SetText(now)
	return pw.part("docProps/core.xml", doc)
}

func (pw *pkgWriter) appProps() error {
	doc, app := newDoc("Properties", map[string]string{"xmlns": nsExtendedPr})
	app.CreateElement("Application").SetText("htmldeck")
	app.CreateElement("Slides").SetText(fmt.Sprintf("%d", len(pw.p.slides)))
	return pw.part("docProps/app.xml", doc)
}

func (pw *pkgWriter) presentation() error {
	doc, pres := newDoc("p:presentation", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	masters := pres.CreateElement("p:sldMasterIdLst")
	mid := masters.CreateElement("p:sldMasterId")
	mid.CreateAttr("id", "2147483648")
	mid.CreateAttr("r:id", "rId1")
	slides := pres.CreateElement("p:sldIdLst")
	for i := range pw.p.slides {
		sid := slides.CreateElement("p:sldId")
		sid.CreateAttr("id", fmt.Sprintf("%d", 256+i))
		sid.CreateAttr("r:id", fmt.Sprintf("rId%d", 2+i))
	}
	sz := pres.CreateElement("p:sldSz")
	sz.CreateAttr("cx", fmt.Sprintf("%d", pw.p.Width))
	sz.CreateAttr("cy", fmt.Sprintf("%d", pw.p.Height))
	notes := pres.CreateElement("p:notesSz")
	notes.CreateAttr("cx", fmt.Sprintf("%d", pw.p.Height))
	notes.CreateAttr("cy", fmt.Sprintf("%d", pw.p.Width))
	return pw.part("ppt/presentation.xml", doc)
}

func (pw *pkgWriter) presentationRels() error {
	doc, rels := newDoc("Relationships", map[string]string{"xmlns": nsRelationship})
	addRel(rels, "rId1", relTypeSlideMaster, "slideMasters/slideMaster1.xml")
	n := 2
	for i := range pw.p.slides {
		addRel(rels, fmt.Sprintf("rId%d", n+i), relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	n += len(pw.p.slides)
	addRel(rels, fmt.Sprintf("rId%d", n), relTypePresProps, "presProps.xml")
	addRel(rels, fmt.Sprintf("rId%d", n+1), relTypeViewProps, "viewProps.xml")
	addRel(rels, fmt.Sprintf("rId%d", n+2), relTypeTableStyles, "tableStyles.xml")
	addRel(rels, fmt.Sprintf("rId%d", n+3), relTypeTheme, "theme/theme1.xml")
	return pw.part("ppt/_rels/presentation.xml.rels", doc)
}

func (pw *pkgWriter) presProps() error {
	doc, _ := newDoc("p:presentationPr", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	return pw.part("ppt/presProps.xml", doc)
}

func (pw *pkgWriter) viewProps() error {
	doc, _ := newDoc("p:viewPr", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	return pw.part("ppt/viewProps.xml", doc)
}

func (pw *pkgWriter) tableStyles() error {
	doc, ts := newDoc("a:tblStyleLst", map[string]string{"xmlns:a": nsDrawing})
	ts.CreateAttr("def", "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}")
	return pw.part("ppt/tableStyles.xml", doc)
}

func (pw *pkgWriter) slideMaster() error {
	doc, master := newDoc("p:sldMaster", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	cSld := master.CreateElement("p:cSld")
	spTree := cSld.CreateElement("p:spTree")
	emptyGroupShape(spTree)
	clrMap := master.CreateElement("p:clrMap")
	for k, v := range map[string]string{
		"bg1": "lt1", "tx1": "dk1", "bg2": "lt2", "tx2": "dk2",
		"accent1": "accent1", "accent2": "accent2", "accent3": "accent3",
		"accent4": "accent4", "accent5": "accent5", "accent6": "accent6",
		"hlink": "hlink", "folHlink": "folHlink",
	} {
		clrMap.CreateAttr(k, v)
	}
	layouts := master.CreateElement("p:sldLayoutIdLst")
	lid := layouts.CreateElement("p:sldLayoutId")
	lid.CreateAttr("id", "2147483649")
	lid.CreateAttr("r:id", "rId1")
	return pw.part("ppt/slideMasters/slideMaster1.xml", doc)
}

func (pw *pkgWriter) slideMasterRels() error {
	doc, rels := newDoc("Relationships", map[string]string{"xmlns": nsRelationship})
	addRel(rels, "rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	addRel(rels, "rId2", relTypeTheme, "../theme/theme1.xml")
	return pw.part("ppt/slideMasters/_rels/slideMaster1.xml.rels", doc)
}

func (pw *pkgWriter) slideLayout() error {
	doc, layout := newDoc("p:sldLayout", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	layout.CreateAttr("type", "blank")
	cSld := layout.CreateElement("p:cSld")
	spTree := cSld.CreateElement("p:spTree")
	emptyGroupShape(spTree)
	clrMapOvr := layout.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")
	return pw.part("ppt/slideLayouts/slideLayout1.xml", doc)
}

func (pw *pkgWriter) slideLayoutRels() error {
	doc, rels := newDoc("Relationships", map[string]string{"xmlns": nsRelationship})
	addRel(rels, "rId1", relTypeSlideMaster, "../slideMasters/slideMaster1.xml")
	return pw.part("ppt/slideLayouts/_rels/slideLayout1.xml.rels", doc)
}

// theme emits the minimal theme part viewers require: a color scheme, a
// font scheme and an empty-but-present format scheme.
func (pw *pkgWriter) theme() error {
	doc, theme := newDoc("a:theme", map[string]string{"xmlns:a": nsDrawing})
	theme.CreateAttr("name", "Office")
	elems := theme.CreateElement("a:themeElements")

	clr := elems.CreateElement("a:clrScheme")
	clr.CreateAttr("name", "Office")
	for _, c := range []struct{ name, val string }{
		{"dk1", "000000"}, {"lt1", "FFFFFF"}, {"dk2", "44546A"}, {"lt2", "E7E6E6"},
		{"accent1", "4472C4"}, {"accent2", "ED7D31"}, {"accent3", "A5A5A5"},
		{"accent4", "FFC000"}, {"accent5", "5B9BD5"}, {"accent6", "70AD47"},
		{"hlink", "0563C1"}, {"folHlink", "954F72"},
	} {
		e := clr.CreateElement("a:" + c.name)
		e.CreateElement("a:srgbClr").CreateAttr("val", c.val)
	}

	font := pw.p.Font
	if font == "" {
		font = "Arial"
	}
	fonts := elems.CreateElement("a:fontScheme")
	fonts.CreateAttr("name", "Office")
	for _, part := range []string{"a:majorFont", "a:minorFont"} {
		f := fonts.CreateElement(part)
		latin := f.CreateElement("a:latin")
		latin.CreateAttr("typeface", font)
		f.CreateElement("a:ea").CreateAttr("typeface", "")
		f.CreateElement("a:cs").CreateAttr("typeface", "")
	}

	fmtScheme := elems.CreateElement("a:fmtScheme")
	fmtScheme.CreateAttr("name", "Office")
	fillLst := fmtScheme.CreateElement("a:fillStyleLst")
	for i := 0; i < 3; i++ {
		fillLst.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
	lnLst := fmtScheme.CreateElement("a:lnStyleLst")
	for _, w := range []string{"6350", "12700", "19050"} {
		ln := lnLst.CreateElement("a:ln")
		ln.CreateAttr("w", w)
		ln.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
	effLst := fmtScheme.CreateElement("a:effectStyleLst")
	for i := 0; i < 3; i++ {
		effLst.CreateElement("a:effectStyle").CreateElement("a:effectLst")
	}
	bgLst := fmtScheme.CreateElement("a:bgFillStyleLst")
	for i := 0; i < 3; i++ {
		bgLst.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
	return pw.part("ppt/theme/theme1.xml", doc)
}

// emptyGroupShape appends the mandatory group-shape header of an spTree.
func emptyGroupShape(spTree *etree.Element) {
	nv := spTree.CreateElement("p:nvGrpSpPr")
	cNv := nv.CreateElement("p:cNvPr")
	cNv.CreateAttr("id", "1")
	cNv.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")
	grpSpPr := spTree.CreateElement("p:grpSpPr")
	xfrm := grpSpPr.CreateElement("a:xfrm")
	for _, tag := range []string{"a:off", "a:chOff"} {
		off := xfrm.CreateElement(tag)
		off.CreateAttr("x", "0")
		off.CreateAttr("y", "0")
	}
	for _, tag := range []string{"a:ext", "a:chExt"} {
		ext := xfrm.CreateElement(tag)
		ext.CreateAttr("cx", "0")
		ext.CreateAttr("cy", "0")
	}
}

func (pw *pkgWriter) slide(s *Slide, n int) error {
	doc, sld := newDoc("p:sld", map[string]string{
		"xmlns:a": nsDrawing,
		"xmlns:r": nsOfficeRel,
		"xmlns:p": nsPresentation,
	})
	cSld := sld.CreateElement("p:cSld")
	spTree := cSld.CreateElement("p:spTree")
	emptyGroupShape(spTree)
	for _, sh := range s.shapes {
		switch v := sh.(type) {
		case *Rect:
			pw.rect(spTree, v)
		case *TextBox:
			pw.textBox(spTree, v)
		case *Table:
			pw.table(spTree, v)
		}
	}
	clrMapOvr := sld.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")
	return pw.part(fmt.Sprintf("ppt/slides/slide%d.xml", n), doc)
}

func (pw *pkgWriter) slideRels(n int) error {
	doc, rels := newDoc("Relationships", map[string]string{"xmlns": nsRelationship})
	addRel(rels, "rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml")
	return pw.part(fmt.Sprintf("ppt/_rels/slide%d.xml.rels", n), doc)
}

func (pw *pkgWriter) nextID() int {
	pw.shapeID++
	return pw.shapeID + 1 // id 1 is the spTree group shape
}

func nvSpPr(sp *etree.Element, id int, kind string) {
	nv := sp.CreateElement("p:nvSpPr")
	cNv := nv.CreateElement("p:cNvPr")
	cNv.CreateAttr("id", fmt.Sprintf("%d", id))
	cNv.CreateAttr("name", fmt.Sprintf("%s-%s", kind, uuid.New().String()))
	nv.CreateElement("p:cNvSpPr")
	nv.CreateElement("p:nvPr")
}

func addXfrm(parent *etree.Element, f Frame) {
	xfrm := parent.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", fmt.Sprintf("%d", f.X))
	off.CreateAttr("y", fmt.Sprintf("%d", f.Y))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", f.W))
	ext.CreateAttr("cy", fmt.Sprintf("%d", f.H))
}

func addSolidFill(parent *etree.Element, hex string) {
	fill := parent.CreateElement("a:solidFill")
	fill.CreateElement("a:srgbClr").CreateAttr("val", hex)
}

func addLine(parent *etree.Element, hex string, w int64, dashed bool) {
	ln := parent.CreateElement("a:ln")
	if w <= 0 {
		w = emuPerPt
	}
	ln.CreateAttr("w", fmt.Sprintf("%d", w))
	addSolidFill(ln, hex)
	if dashed {
		ln.CreateElement("a:prstDash").CreateAttr("val", "dash")
	}
}

func (pw *pkgWriter) rect(spTree *etree.Element, r *Rect) {
	sp := spTree.CreateElement("p:sp")
	nvSpPr(sp, pw.nextID(), "rect")
	spPr := sp.CreateElement("p:spPr")
	addXfrm(spPr, r.Frame)
	geom := spPr.CreateElement("a:prstGeom")
	if r.Rounded {
		geom.CreateAttr("prst", "roundRect")
	} else {
		geom.CreateAttr("prst", "rect")
	}
	geom.CreateElement("a:avLst")
	if r.Fill != "" {
		addSolidFill(spPr, r.Fill)
	} else {
		spPr.CreateElement("a:noFill")
	}
	if r.Line != "" {
		addLine(spPr, r.Line, r.LineW, false)
	}
}

func (pw *pkgWriter) textBox(spTree *etree.Element, tb *TextBox) {
	sp := spTree.CreateElement("p:sp")
	nvSpPr(sp, pw.nextID(), "textbox")
	spPr := sp.CreateElement("p:spPr")
	addXfrm(spPr, tb.Frame)
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
	spPr.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	if tb.NoWrap {
		bodyPr.CreateAttr("wrap", "none")
	}
	if tb.Middle {
		bodyPr.CreateAttr("anchor", "ctr")
	}
	for _, ins := range []string{"lIns", "tIns", "rIns", "bIns"} {
		bodyPr.CreateAttr(ins, "0")
	}
	txBody.CreateElement("a:lstStyle")
	for _, para := range tb.Paragraphs {
		pw.paragraph(txBody, para)
	}
}

func (pw *pkgWriter) paragraph(txBody *etree.Element, para *Paragraph) {
	p := txBody.CreateElement("a:p")
	if a := alignVal(para.Align); a != "" {
		p.CreateElement("a:pPr").CreateAttr("algn", a)
	}
	for _, rn := range para.Runs {
		if rn.Break {
			p.CreateElement("a:br")
			continue
		}
		r := p.CreateElement("a:r")
		pw.runProps(r.CreateElement("a:rPr"), rn)
		r.CreateElement("a:t").SetText(rn.Text)
	}
}

func (pw *pkgWriter) runProps(rPr *etree.Element, rn *Run) {
	rPr.CreateAttr("lang", "en-US")
	if rn.SizePt > 0 {
		rPr.CreateAttr("sz", fmt.Sprintf("%d", int(math.Round(rn.SizePt*100))))
	}
	if rn.Bold {
		rPr.CreateAttr("b", "1")
	}
	if rn.Italic {
		rPr.CreateAttr("i", "1")
	}
	if rn.Underline {
		rPr.CreateAttr("u", "sng")
	}
	rPr.CreateAttr("dirty", "0")
	if rn.Color != "" {
		addSolidFill(rPr, rn.Color)
	}
	font := rn.Font
	if font == "" {
		font = pw.p.Font
	}
	if font != "" {
		rPr.CreateElement("a:latin").CreateAttr("typeface", font)
	}
}

func alignVal(align string) string {
	switch align {
	case "center":
		return "ctr"
	case "right":
		return "r"
	case "left":
		return "l"
	default:
		return ""
	}
}

func (pw *pkgWriter) table(spTree *etree.Element, t *Table) {
	frame := spTree.CreateElement("p:graphicFrame")
	nv := frame.CreateElement("p:nvGraphicFramePr")
	cNv := nv.CreateElement("p:cNvPr")
	cNv.CreateAttr("id", fmt.Sprintf("%d", pw.nextID()))
	cNv.CreateAttr("name", fmt.Sprintf("table-%s", uuid.New().String()))
	nv.CreateElement("p:cNvGraphicFramePr")
	nv.CreateElement("p:nvPr")
	addXfrm(frame, t.Frame)

	graphic := frame.CreateElement("a:graphic")
	data := graphic.CreateElement("a:graphicData")
	data.CreateAttr("uri", "http://schemas.openxmlformats.org/drawingml/2006/table")
	tbl := data.CreateElement("a:tbl")
	tbl.CreateElement("a:tblPr")
	grid := tbl.CreateElement("a:tblGrid")
	for _, w := range t.ColWidths {
		grid.CreateElement("a:gridCol").CreateAttr("w", fmt.Sprintf("%d", w))
	}

	rowH := t.RowHeight
	if rowH <= 0 && len(t.Rows) > 0 {
		rowH = t.H / int64(len(t.Rows))
	}
	for _, row := range t.Rows {
		tr := tbl.CreateElement("a:tr")
		tr.CreateAttr("h", fmt.Sprintf("%d", rowH))
		for _, cell := range row {
			pw.tableCell(tr, cell, t)
		}
		for i := len(row); i < len(t.ColWidths); i++ {
			pw.tableCell(tr, &Cell{}, t)
		}
	}
}

func (pw *pkgWriter) tableCell(tr *etree.Element, cell *Cell, t *Table) {
	tc := tr.CreateElement("a:tc")
	txBody := tc.CreateElement("a:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	pw.paragraph(txBody, &Paragraph{Runs: cell.Runs, Align: cell.Align})

	tcPr := tc.CreateElement("a:tcPr")
	if cell.Middle {
		tcPr.CreateAttr("anchor", "ctr")
	}
	if t.Border != "" {
		for _, side := range []string{"a:lnL", "a:lnR", "a:lnT", "a:lnB"} {
			ln := tcPr.CreateElement(side)
			ln.CreateAttr("w", fmt.Sprintf("%d", emuPerPt/2))
			addSolidFill(ln, t.Border)
			if t.Dashed {
				ln.CreateElement("a:prstDash").CreateAttr("val", "dash")
			}
		}
	}
	if cell.Fill != "" {
		addSolidFill(tcPr, cell.Fill)
	}
}
