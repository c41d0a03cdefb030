package deck

import "strings"

// Outline is a read-only projection of a deck: what a reader of the finished file can see,
// without formatting.
type Outline struct {
	Slides []SlideOutline
}

type SlideOutline struct {
	Number     int
	Title      string
	Background string // hex color, empty when the slide keeps the master background
	Shapes     []ShapeOutline
}

type ShapeOutline struct {
	Name     string
	Geometry string
	Frame    Rect
	Text     string
}

// Outline projects the deck into its outline.
func (d *Deck) Outline() Outline {
	out := Outline{Slides: make([]SlideOutline, 0, len(d.Slides))}
	for _, s := range d.Slides {
		so := SlideOutline{Number: s.Number}
		if s.Background != nil {
			so.Background = s.Background.Hex()
		}
		for _, sh := range s.Shapes {
			so.Shapes = append(so.Shapes, ShapeOutline{
				Name:     sh.Name,
				Geometry: sh.Kind.Geometry(),
				Frame:    sh.Frame,
				Text:     sh.Text(),
			})
		}
		so.Title = TitleOf(so.Shapes)
		out.Slides = append(out.Slides, so)
	}
	return out
}

// TitleOf returns the first line of the first shape that carries text.
func TitleOf(shapes []ShapeOutline) string {
	for _, sh := range shapes {
		text := strings.TrimSpace(sh.Text)
		if text == "" {
			continue
		}
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}
		return text
	}
	return ""
}

// Texts returns the non-empty texts of the slide in shape order.
func (s SlideOutline) Texts() []string {
	var texts []string
	for _, sh := range s.Shapes {
		if strings.TrimSpace(sh.Text) != "" {
			texts = append(texts, sh.Text)
		}
	}
	return texts
}
