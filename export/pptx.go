package export

import (
	"bytes"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"sqlmondeck/deck"
)

// helper: create a solid fill
func solidFill(c deck.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

// helper: set paragraph alignment
func setAlignment(p *ppt.Paragraph, a deck.Alignment) {
	switch a {
	case deck.AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case deck.AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

// RenderPPTX writes the deck with GoPPT. Properties GoPPT does not expose (slide size,
// backgrounds, geometry, outlines, font family, spacing, line breaks) are applied by Finish.
func RenderPPTX(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Creator

	for i, s := range d.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		for _, sh := range s.Shapes {
			renderShape(slide, sh)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

func renderShape(slide *ppt.Slide, sh *deck.Shape) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(int64(sh.Frame.Left)).SetOffsetY(int64(sh.Frame.Top))
	shape.SetWidth(int64(sh.Frame.Width)).SetHeight(int64(sh.Frame.Height))
	if sh.Fill != nil {
		shape.SetFill(solidFill(*sh.Fill))
	}

	for i, para := range sh.Paragraphs {
		if i > 0 {
			shape.CreateParagraph()
		}
		// One run per line; Finish joins them with soft breaks.
		for _, line := range strings.Split(para.Text, "\n") {
			tr := shape.CreateTextRun(line)
			tr.GetFont().SetSize(para.Font.Size).SetBold(para.Font.Bold).SetColor(ppt.NewColor(para.Font.Color.ARGB()))
		}
		setAlignment(shape.GetActiveParagraph(), para.Align)
	}
}
