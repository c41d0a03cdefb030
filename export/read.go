package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

func openDeck(path string) (*ppt.Presentation, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}
	return pres, nil
}

// CountSlides returns the number of slides of a written deck file.
func CountSlides(path string) (int, error) {
	pres, err := openDeck(path)
	if err != nil {
		return 0, err
	}
	return len(pres.GetAllSlides()), nil
}

// SlideTexts returns the text of every slide in a deck file, one entry per paragraph.
func SlideTexts(path string) ([][]string, error) {
	pres, err := openDeck(path)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, slide := range pres.GetAllSlides() {
		var texts []string
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				if text = strings.TrimSpace(text); text != "" {
					texts = append(texts, text)
				}
			}
		}
		out = append(out, texts)
	}
	return out, nil
}
