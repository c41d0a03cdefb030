// Package deck is the in-memory model of a slide deck and the layout operations used to author it.
//
// A Deck is written, never queried: slides are appended in order and each slide receives shapes
// in their visual z-order. Every position is an explicit frame in EMU, so nothing about a deck
// depends on runtime input.
package deck

import "strings"

// DefaultFamily is the font family applied when no other is requested.
const DefaultFamily = "Segoe UI"

// ShapeKind identifies the drawable element type.
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindTextBox
	KindRoundedRect
)

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindTextBox:
		return "TextBox"
	case KindRoundedRect:
		return "Rounded Rectangle"
	default:
		return "Shape"
	}
}

// Geometry returns the DrawingML preset geometry name for the kind.
func (k ShapeKind) Geometry() string {
	if k == KindRoundedRect {
		return "roundRect"
	}
	return "rect"
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Font describes the character formatting of a paragraph.
type Font struct {
	Size   int // points
	Bold   bool
	Color  Color
	Family string
}

// Paragraph is a single paragraph of a text frame. Text may contain '\n', which is kept as a
// soft line break inside the paragraph.
type Paragraph struct {
	Text       string
	Font       Font
	Align      Alignment
	SpaceAfter int // points, 0 leaves the spacing unset
	Level      int
}

// Shape is a positioned element on a slide.
type Shape struct {
	Name       string
	Kind       ShapeKind
	Frame      Rect
	Fill       *Color
	Paragraphs []Paragraph
	WordWrap   bool
	// CenterText anchors the text frame vertically in the middle of the shape.
	CenterText bool
}

// Text returns the shape's text with paragraphs separated by '\n'.
func (s *Shape) Text() string {
	parts := make([]string, len(s.Paragraphs))
	for i, p := range s.Paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// HasText reports whether the shape carries any paragraph.
func (s *Shape) HasText() bool {
	return len(s.Paragraphs) > 0
}

// Slide is one page of a deck.
type Slide struct {
	Number     int
	Background *Color
	Shapes     []*Shape
}

// Deck is an ordered sequence of slides sharing one canvas size.
type Deck struct {
	Width   EMU
	Height  EMU
	Title   string
	Creator string
	Slides  []*Slide
}

// New creates an empty 13.333 x 7.5 inch (16:9) deck.
func New() *Deck {
	return &Deck{
		Width:  Inches(13.333),
		Height: Inches(7.5),
	}
}

// AddSlide appends a blank slide and returns it.
func (d *Deck) AddSlide() *Slide {
	s := &Slide{Number: len(d.Slides) + 1}
	d.Slides = append(d.Slides, s)
	return s
}

// Bounds returns the frame covering the whole canvas.
func (d *Deck) Bounds() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// ShapeCount returns the total number of shapes across all slides.
func (d *Deck) ShapeCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Shapes)
	}
	return n
}
