package deck

import "fmt"

// TextOption adjusts the formatting applied by the text-bearing builder operations.
type TextOption func(*textStyle)

type textStyle struct {
	font  Font
	align Alignment
}

// WithSize sets the font size in points.
func WithSize(pt int) TextOption {
	return func(s *textStyle) { s.font.Size = pt }
}

// WithBold makes the text bold.
func WithBold() TextOption {
	return func(s *textStyle) { s.font.Bold = true }
}

// WithColor sets the text color.
func WithColor(c Color) TextOption {
	return func(s *textStyle) { s.font.Color = c }
}

// WithAlign sets the horizontal alignment.
func WithAlign(a Alignment) TextOption {
	return func(s *textStyle) { s.align = a }
}

// WithFamily sets the font family.
func WithFamily(name string) TextOption {
	return func(s *textStyle) { s.font.Family = name }
}

func newTextStyle(size int, color Color, opts []TextOption) textStyle {
	st := textStyle{
		font:  Font{Size: size, Color: color, Family: DefaultFamily},
		align: AlignLeft,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

func (s *Slide) add(kind ShapeKind, frame Rect) *Shape {
	sh := &Shape{
		Name:  fmt.Sprintf("%s %d", kind, len(s.Shapes)+1),
		Kind:  kind,
		Frame: frame,
	}
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// SetBackground fills the slide background with a solid color.
func (s *Slide) SetBackground(c Color) {
	s.Background = &c
}

// AddRectangle draws a borderless filled rectangle.
func (s *Slide) AddRectangle(frame Rect, fill Color) *Shape {
	sh := s.add(KindRectangle, frame)
	sh.Fill = &fill
	return sh
}

// AddTextBox places a word-wrapped text region holding a single paragraph.
// Defaults: 18pt, regular, dark gray, left aligned.
func (s *Slide) AddTextBox(frame Rect, text string, opts ...TextOption) *Shape {
	st := newTextStyle(18, DarkGray, opts)
	sh := s.add(KindTextBox, frame)
	sh.WordWrap = true
	sh.Paragraphs = []Paragraph{{Text: text, Font: st.font, Align: st.align}}
	return sh
}

// AddBulletList places one paragraph per item with 6pt spacing after each.
// Defaults: 16pt, regular, dark gray, left aligned.
func (s *Slide) AddBulletList(frame Rect, items []string, opts ...TextOption) *Shape {
	st := newTextStyle(16, DarkGray, opts)
	sh := s.add(KindTextBox, frame)
	sh.WordWrap = true
	sh.Paragraphs = make([]Paragraph, 0, len(items))
	for _, item := range items {
		sh.Paragraphs = append(sh.Paragraphs, Paragraph{
			Text:       item,
			Font:       st.font,
			Align:      st.align,
			SpaceAfter: 6,
		})
	}
	return sh
}

// AddLabeledBox draws a borderless rounded rectangle with an optional caption. The caption is
// always bold and centered; it defaults to 12pt white. An empty label leaves the box bare.
func (s *Slide) AddLabeledBox(frame Rect, fill Color, label string, opts ...TextOption) *Shape {
	sh := s.add(KindRoundedRect, frame)
	sh.Fill = &fill
	if label == "" {
		return sh
	}
	st := newTextStyle(12, White, opts)
	st.font.Bold = true
	sh.WordWrap = true
	sh.CenterText = true
	sh.Paragraphs = []Paragraph{{Text: label, Font: st.font, Align: AlignCenter}}
	return sh
}
