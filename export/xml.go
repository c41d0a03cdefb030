package export

import (
	"path"
	"strings"

	"github.com/beevik/etree"
)

const (
	nsDrawingML = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRels      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeTheme = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
)

// Child order of the elements the finishing pass touches. Elements not listed keep their place.
var (
	spPrOrder = []string{"xfrm", "custGeom", "prstGeom", "noFill", "solidFill", "gradFill", "blipFill",
		"pattFill", "grpFill", "ln", "effectLst", "effectDag", "scene3d", "sp3d", "extLst"}
	rPrOrder = []string{"ln", "noFill", "solidFill", "gradFill", "blipFill", "pattFill", "grpFill",
		"effectLst", "effectDag", "highlight", "uLnTx", "uLn", "uFillTx", "uFill", "latin", "ea", "cs",
		"sym", "hlinkClick", "hlinkMouseOver", "rtl", "extLst"}
	pPrOrder = []string{"lnSpc", "spcBef", "spcAft", "buClrTx", "buClr", "buSzTx", "buSzPct", "buSzPts",
		"buFontTx", "buFont", "buNone", "buAutoNum", "buChar", "buBlip", "tabLst", "defRPr", "extLst"}
	txBodyOrder = []string{"bodyPr", "lstStyle", "p"}
	cSldOrder   = []string{"bg", "spTree", "custDataLst", "controls", "extLst"}
	fillTags    = []string{"noFill", "solidFill", "gradFill", "blipFill", "pattFill", "grpFill"}
)

func readXML(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}

// prefixFor returns the prefix bound to ns on root, declaring one when the document lacks it.
func prefixFor(root *etree.Element, ns, fallback string) string {
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Value == ns {
			return a.Key
		}
	}
	root.CreateAttr("xmlns:"+fallback, ns)
	return fallback
}

func qualified(prefix, tag string) string {
	if prefix == "" {
		return tag
	}
	return prefix + ":" + tag
}

func rank(order []string, tag string) int {
	for i, t := range order {
		if t == tag {
			return i
		}
	}
	return -1
}

// insertOrdered adds child to parent ahead of the first sibling that must follow it.
func insertOrdered(parent, child *etree.Element, order []string) {
	r := rank(order, child.Tag)
	for i, tok := range parent.Child {
		el, ok := tok.(*etree.Element)
		if !ok {
			continue
		}
		if rr := rank(order, el.Tag); r >= 0 && rr > r {
			parent.InsertChildAt(i, child)
			return
		}
	}
	parent.AddChild(child)
}

// ensure returns parent's child with the given local name, creating it in order when missing.
func ensure(parent *etree.Element, prefix, tag string, order []string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	el := etree.NewElement(qualified(prefix, tag))
	insertOrdered(parent, el, order)
	return el
}

// replace drops every child named in tags and inserts el in order.
func replace(parent, el *etree.Element, tags []string, order []string) {
	for _, tag := range tags {
		for _, old := range parent.SelectElements(tag) {
			parent.RemoveChild(old)
		}
	}
	insertOrdered(parent, el, order)
}

func solidFillElement(prefix, hex string) *etree.Element {
	fill := etree.NewElement(qualified(prefix, "solidFill"))
	fill.CreateElement(qualified(prefix, "srgbClr")).CreateAttr("val", hex)
	return fill
}

// relID returns the namespaced r:id attribute, skipping a plain id attribute.
func relID(e *etree.Element) string {
	for _, a := range e.Attr {
		if a.Key == "id" && a.Space != "" {
			return a.Value
		}
	}
	return ""
}

// relationship is one entry of a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

func readRels(data []byte) ([]relationship, error) {
	doc, err := readXML(data)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	var rels []relationship
	for _, el := range root.SelectElements("Relationship") {
		rels = append(rels, relationship{
			ID:     el.SelectAttrValue("Id", ""),
			Type:   el.SelectAttrValue("Type", ""),
			Target: el.SelectAttrValue("Target", ""),
		})
	}
	return rels, nil
}

// relsPath returns the relationships part of a part, e.g. ppt/_rels/presentation.xml.rels.
func relsPath(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// resolveTarget resolves a relationship target against the directory of the source part.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(source), target))
}
