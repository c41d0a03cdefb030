package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"sqlmondeck/deck"
)

var (
	// ErrShapeMismatch is returned when a written slide does not hold the shapes of its model.
	ErrShapeMismatch = errors.New("shape count mismatch")
	// ErrSlideMismatch is returned when the package and the deck disagree on the slide count.
	ErrSlideMismatch = errors.New("slide count mismatch")
)

var (
	presentationOrder = []string{"sldMasterIdLst", "notesMasterIdLst", "handoutMasterIdLst", "sldIdLst",
		"sldSz", "notesSz", "smartTags", "embeddedFontLst", "custShowLst", "photoAlbum", "custDataLst",
		"kinsoku", "defaultTextStyle", "modifyVerifier", "extLst"}
	spOrder = []string{"nvSpPr", "spPr", "style", "txBody", "extLst"}
)

// FinishOptions carries the inputs of the finishing pass that do not come from the deck.
type FinishOptions struct {
	// Theme replaces the package's theme part when set.
	Theme []byte
}

// Finish applies the deck properties the authoring library cannot express to a written package.
// Shapes are matched to the model by their order in each slide's shape tree.
func Finish(data []byte, d *deck.Deck, opts FinishOptions) ([]byte, error) {
	pkg, err := OpenPackage(data)
	if err != nil {
		return nil, err
	}

	if err := finishPresentation(pkg, d); err != nil {
		return nil, err
	}

	names, err := pkg.SlideParts()
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	if len(names) != len(d.Slides) {
		return nil, fmt.Errorf("%w: package has %d, deck has %d", ErrSlideMismatch, len(names), len(d.Slides))
	}
	for i, name := range names {
		if err := finishSlide(pkg, name, d.Slides[i]); err != nil {
			return nil, err
		}
	}

	if opts.Theme != nil {
		theme, err := pkg.ThemePart()
		if err != nil {
			return nil, fmt.Errorf("failed to locate theme: %w", err)
		}
		pkg.SetPart(theme, opts.Theme)
	}

	return pkg.Bytes()
}

func finishPresentation(pkg *Package, d *deck.Deck) error {
	data, err := pkg.Part(presentationPart)
	if err != nil {
		return err
	}
	doc, err := readXML(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", presentationPart, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", presentationPart)
	}

	size := ensure(root, root.Space, "sldSz", presentationOrder)
	size.CreateAttr("cx", strconv.FormatInt(int64(d.Width), 10))
	size.CreateAttr("cy", strconv.FormatInt(int64(d.Height), 10))
	size.RemoveAttr("type")

	out, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", presentationPart, err)
	}
	pkg.SetPart(presentationPart, out)
	return nil
}

func finishSlide(pkg *Package, name string, s *deck.Slide) error {
	data, err := pkg.Part(name)
	if err != nil {
		return err
	}
	doc, err := readXML(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", name)
	}
	a := prefixFor(root, nsDrawingML, "a")

	cSld := root.SelectElement("cSld")
	if cSld == nil {
		return fmt.Errorf("%w: %s has no common slide data", ErrMissingPart, name)
	}
	if s.Background != nil {
		setBackground(cSld, a, *s.Background)
	}

	tree := cSld.SelectElement("spTree")
	var sps []*etree.Element
	if tree != nil {
		sps = tree.SelectElements("sp")
	}
	if len(sps) != len(s.Shapes) {
		return fmt.Errorf("%w: slide %d has %d shapes, model has %d", ErrShapeMismatch, s.Number, len(sps), len(s.Shapes))
	}
	for i, sp := range sps {
		finishShape(sp, s.Shapes[i], a)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	pkg.SetPart(name, out)
	return nil
}

func setBackground(cSld *etree.Element, a string, c deck.Color) {
	p := cSld.Space
	bg := etree.NewElement(qualified(p, "bg"))
	bgPr := bg.CreateElement(qualified(p, "bgPr"))
	bgPr.AddChild(solidFillElement(a, c.Hex()))
	bgPr.CreateElement(qualified(a, "effectLst"))
	replace(cSld, bg, []string{"bg"}, cSldOrder)
}

func finishShape(sp *etree.Element, sh *deck.Shape, a string) {
	p := sp.Space

	if nv := sp.SelectElement("nvSpPr"); nv != nil {
		if c := nv.SelectElement("cNvPr"); c != nil {
			c.CreateAttr("name", sh.Name)
		}
		if c := nv.SelectElement("cNvSpPr"); c != nil {
			if sh.Kind == deck.KindTextBox {
				c.CreateAttr("txBox", "1")
			} else {
				c.RemoveAttr("txBox")
			}
		}
	}

	spPr := ensure(sp, p, "spPr", spOrder)
	xfrm := ensure(spPr, a, "xfrm", spPrOrder)
	off := ensure(xfrm, a, "off", []string{"off", "ext"})
	off.CreateAttr("x", strconv.FormatInt(int64(sh.Frame.Left), 10))
	off.CreateAttr("y", strconv.FormatInt(int64(sh.Frame.Top), 10))
	ext := ensure(xfrm, a, "ext", []string{"off", "ext"})
	ext.CreateAttr("cx", strconv.FormatInt(int64(sh.Frame.Width), 10))
	ext.CreateAttr("cy", strconv.FormatInt(int64(sh.Frame.Height), 10))

	geom := etree.NewElement(qualified(a, "prstGeom"))
	geom.CreateAttr("prst", sh.Kind.Geometry())
	geom.CreateElement(qualified(a, "avLst"))
	replace(spPr, geom, []string{"custGeom", "prstGeom"}, spPrOrder)

	if sh.Fill != nil {
		replace(spPr, solidFillElement(a, sh.Fill.Hex()), fillTags, spPrOrder)
		ln := etree.NewElement(qualified(a, "ln"))
		ln.CreateElement(qualified(a, "noFill"))
		replace(spPr, ln, []string{"ln"}, spPrOrder)
	} else {
		replace(spPr, etree.NewElement(qualified(a, "noFill")), fillTags, spPrOrder)
	}

	if !sh.HasText() {
		clearText(sp)
		return
	}

	body := ensure(sp, p, "txBody", spOrder)
	bodyPr := ensure(body, a, "bodyPr", txBodyOrder)
	if sh.WordWrap {
		bodyPr.CreateAttr("wrap", "square")
	}
	if sh.CenterText {
		bodyPr.CreateAttr("anchor", "ctr")
	}

	paras := body.SelectElements("p")
	for i, para := range sh.Paragraphs {
		var pe *etree.Element
		if i < len(paras) {
			pe = paras[i]
		} else {
			pe = etree.NewElement(qualified(a, "p"))
			body.AddChild(pe)
		}
		finishParagraph(pe, para, a)
	}
	for _, extra := range paras[min(len(paras), len(sh.Paragraphs)):] {
		body.RemoveChild(extra)
	}
}

// clearText leaves a text body, if any, with a single empty paragraph.
func clearText(sp *etree.Element) {
	body := sp.SelectElement("txBody")
	if body == nil {
		return
	}
	for i, pe := range body.SelectElements("p") {
		if i > 0 {
			body.RemoveChild(pe)
			continue
		}
		removeRuns(pe)
	}
}

func removeRuns(pe *etree.Element) {
	for _, tag := range []string{"r", "br", "fld"} {
		for _, el := range pe.SelectElements(tag) {
			pe.RemoveChild(el)
		}
	}
}

func algn(al deck.Alignment) string {
	switch al {
	case deck.AlignCenter:
		return "ctr"
	case deck.AlignRight:
		return "r"
	default:
		return "l"
	}
}

// finishParagraph rewrites the runs of a paragraph from the model. The first run's properties
// written by the authoring library are kept as the base for every run and break.
func finishParagraph(pe *etree.Element, para deck.Paragraph, a string) {
	pPr := pe.SelectElement("pPr")
	if pPr == nil {
		pPr = etree.NewElement(qualified(a, "pPr"))
		pe.InsertChildAt(0, pPr)
	}
	pPr.CreateAttr("algn", algn(para.Align))
	if para.Level > 0 {
		pPr.CreateAttr("lvl", strconv.Itoa(para.Level))
	}
	if para.SpaceAfter > 0 {
		spc := etree.NewElement(qualified(a, "spcAft"))
		spc.CreateElement(qualified(a, "spcPts")).CreateAttr("val", strconv.Itoa(para.SpaceAfter*100))
		replace(pPr, spc, []string{"spcAft"}, pPrOrder)
	}

	rPr := runProperties(pe, para.Font, a)
	removeRuns(pe)

	end := pe.SelectElement("endParaRPr")
	add := func(el *etree.Element) {
		if end != nil {
			pe.InsertChildAt(end.Index(), el)
			return
		}
		pe.AddChild(el)
	}
	for j, line := range strings.Split(para.Text, "\n") {
		if j > 0 {
			br := etree.NewElement(qualified(a, "br"))
			br.AddChild(rPr.Copy())
			add(br)
		}
		r := etree.NewElement(qualified(a, "r"))
		r.AddChild(rPr.Copy())
		r.CreateElement(qualified(a, "t")).SetText(line)
		add(r)
	}
}

func runProperties(pe *etree.Element, f deck.Font, a string) *etree.Element {
	var rPr *etree.Element
	if r := pe.SelectElement("r"); r != nil {
		if base := r.SelectElement("rPr"); base != nil {
			rPr = base.Copy()
		}
	}
	if rPr == nil {
		rPr = etree.NewElement(qualified(a, "rPr"))
		rPr.CreateAttr("lang", "en-US")
	}
	rPr.CreateAttr("sz", strconv.Itoa(f.Size*100))
	if f.Bold {
		rPr.CreateAttr("b", "1")
	} else {
		rPr.CreateAttr("b", "0")
	}
	replace(rPr, solidFillElement(a, f.Color.Hex()), fillTags, rPrOrder)
	if f.Family != "" {
		latin := etree.NewElement(qualified(a, "latin"))
		latin.CreateAttr("typeface", f.Family)
		replace(rPr, latin, []string{"latin"}, rPrOrder)
	}
	return rPr
}
