package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"sqlmondeck/deck"
)

// Inspect reads a written package back into an outline. Soft line breaks and paragraph ends both
// read as '\n', so the result compares equal to the outline of the deck that produced it.
func Inspect(data []byte) (deck.Outline, error) {
	pkg, err := OpenPackage(data)
	if err != nil {
		return deck.Outline{}, err
	}
	names, err := pkg.SlideParts()
	if err != nil {
		return deck.Outline{}, fmt.Errorf("failed to list slides: %w", err)
	}

	out := deck.Outline{Slides: make([]deck.SlideOutline, 0, len(names))}
	for i, name := range names {
		part, err := pkg.Part(name)
		if err != nil {
			return deck.Outline{}, err
		}
		so, err := inspectSlide(part)
		if err != nil {
			return deck.Outline{}, fmt.Errorf("failed to inspect %s: %w", name, err)
		}
		so.Number = i + 1
		out.Slides = append(out.Slides, so)
	}
	return out, nil
}

func inspectSlide(data []byte) (deck.SlideOutline, error) {
	var so deck.SlideOutline
	doc, err := readXML(data)
	if err != nil {
		return so, err
	}
	root := doc.Root()
	if root == nil {
		return so, fmt.Errorf("no root element")
	}
	cSld := root.SelectElement("cSld")
	if cSld == nil {
		return so, nil
	}

	if bg := cSld.SelectElement("bg"); bg != nil {
		if bgPr := bg.SelectElement("bgPr"); bgPr != nil {
			so.Background = solidColor(bgPr)
		}
	}

	tree := cSld.SelectElement("spTree")
	if tree == nil {
		return so, nil
	}
	for _, sp := range tree.SelectElements("sp") {
		so.Shapes = append(so.Shapes, inspectShape(sp))
	}
	so.Title = deck.TitleOf(so.Shapes)
	return so, nil
}

func solidColor(parent *etree.Element) string {
	fill := parent.SelectElement("solidFill")
	if fill == nil {
		return ""
	}
	if clr := fill.SelectElement("srgbClr"); clr != nil {
		return strings.ToUpper(clr.SelectAttrValue("val", ""))
	}
	return ""
}

func inspectShape(sp *etree.Element) deck.ShapeOutline {
	var so deck.ShapeOutline
	if nv := sp.SelectElement("nvSpPr"); nv != nil {
		if c := nv.SelectElement("cNvPr"); c != nil {
			so.Name = c.SelectAttrValue("name", "")
		}
	}

	if spPr := sp.SelectElement("spPr"); spPr != nil {
		if geom := spPr.SelectElement("prstGeom"); geom != nil {
			so.Geometry = geom.SelectAttrValue("prst", "")
		}
		if xfrm := spPr.SelectElement("xfrm"); xfrm != nil {
			if off := xfrm.SelectElement("off"); off != nil {
				so.Frame.Left = attrEMU(off, "x")
				so.Frame.Top = attrEMU(off, "y")
			}
			if ext := xfrm.SelectElement("ext"); ext != nil {
				so.Frame.Width = attrEMU(ext, "cx")
				so.Frame.Height = attrEMU(ext, "cy")
			}
		}
	}

	if body := sp.SelectElement("txBody"); body != nil {
		var paras []string
		for _, p := range body.SelectElements("p") {
			paras = append(paras, paragraphText(p))
		}
		so.Text = strings.Join(paras, "\n")
	}
	return so
}

func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, el := range p.ChildElements() {
		switch el.Tag {
		case "r", "fld":
			if t := el.SelectElement("t"); t != nil {
				sb.WriteString(t.Text())
			}
		case "br":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func attrEMU(e *etree.Element, key string) deck.EMU {
	v, err := strconv.ParseInt(e.SelectAttrValue(key, "0"), 10, 64)
	if err != nil {
		return 0
	}
	return deck.EMU(v)
}
