package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeckIsWidescreen(t *testing.T) {
	d := New()
	require.Equal(t, EMU(12191695), d.Width)
	require.Equal(t, EMU(6858000), d.Height)
	require.Empty(t, d.Slides)
}

func TestAddSlideNumbersSequentially(t *testing.T) {
	d := New()
	first := d.AddSlide()
	second := d.AddSlide()
	require.Equal(t, 1, first.Number)
	require.Equal(t, 2, second.Number)
	require.Len(t, d.Slides, 2)
}

func TestSetBackground(t *testing.T) {
	s := New().AddSlide()
	require.Nil(t, s.Background)
	s.SetBackground(White)
	require.NotNil(t, s.Background)
	require.Equal(t, "FFFFFF", s.Background.Hex())
	require.Empty(t, s.Shapes, "a background is not a shape")
}

func TestAddRectangle(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddRectangle(In(0, 0, 13.333, 1.2), DarkBlue)

	require.Equal(t, KindRectangle, sh.Kind)
	require.Equal(t, "Rectangle 1", sh.Name)
	require.Equal(t, "rect", sh.Kind.Geometry())
	require.Equal(t, DarkBlue, *sh.Fill)
	require.False(t, sh.HasText())
	require.Equal(t, "", sh.Text())
}

func TestAddTextBoxDefaults(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddTextBox(In(1, 1, 5, 1), "hello")

	require.Equal(t, KindTextBox, sh.Kind)
	require.True(t, sh.WordWrap)
	require.Nil(t, sh.Fill)
	require.Len(t, sh.Paragraphs, 1)
	p := sh.Paragraphs[0]
	require.Equal(t, Font{Size: 18, Color: DarkGray, Family: DefaultFamily}, p.Font)
	require.Equal(t, AlignLeft, p.Align)
	require.Zero(t, p.SpaceAfter)
}

func TestAddTextBoxOptions(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddTextBox(In(1, 1, 5, 1), "title",
		WithSize(44), WithBold(), WithColor(White), WithAlign(AlignCenter), WithFamily("Arial"))

	p := sh.Paragraphs[0]
	require.Equal(t, Font{Size: 44, Bold: true, Color: White, Family: "Arial"}, p.Font)
	require.Equal(t, AlignCenter, p.Align)
}

func TestAddBulletList(t *testing.T) {
	s := New().AddSlide()
	items := []string{"one", "two", "three"}
	sh := s.AddBulletList(In(1, 1, 5, 3), items, WithSize(22))

	require.Equal(t, KindTextBox, sh.Kind)
	require.Len(t, sh.Paragraphs, 3)
	for i, p := range sh.Paragraphs {
		require.Equal(t, items[i], p.Text)
		require.Equal(t, 6, p.SpaceAfter)
		require.Equal(t, 0, p.Level)
		require.Equal(t, 22, p.Font.Size)
		require.Equal(t, DarkGray, p.Font.Color)
	}
	require.Equal(t, "one\ntwo\nthree", sh.Text())
}

func TestAddLabeledBox(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddLabeledBox(In(1, 1, 2, 1), Green, "Agentless", WithSize(16))

	require.Equal(t, KindRoundedRect, sh.Kind)
	require.Equal(t, "roundRect", sh.Kind.Geometry())
	require.Equal(t, "Rounded Rectangle 1", sh.Name)
	require.True(t, sh.CenterText)
	require.Len(t, sh.Paragraphs, 1)
	p := sh.Paragraphs[0]
	require.True(t, p.Font.Bold)
	require.Equal(t, White, p.Font.Color)
	require.Equal(t, 16, p.Font.Size)
	require.Equal(t, AlignCenter, p.Align)
}

func TestAddLabeledBoxCaptionStaysCenteredAndBold(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddLabeledBox(In(1, 1, 2, 1), Green, "x", WithAlign(AlignRight))
	require.Equal(t, AlignCenter, sh.Paragraphs[0].Align)
	require.True(t, sh.Paragraphs[0].Font.Bold)
}

func TestAddLabeledBoxWithoutLabel(t *testing.T) {
	s := New().AddSlide()
	sh := s.AddLabeledBox(In(1, 1, 2, 1), LightBlue, "")
	require.False(t, sh.HasText())
	require.False(t, sh.CenterText)
}

func TestShapeNamesFollowSlidePosition(t *testing.T) {
	s := New().AddSlide()
	s.AddRectangle(In(0, 0, 1, 1), DarkBlue)
	s.AddTextBox(In(0, 0, 1, 1), "a")
	s.AddLabeledBox(In(0, 0, 1, 1), Green, "b")

	names := []string{}
	for _, sh := range s.Shapes {
		names = append(names, sh.Name)
	}
	require.Equal(t, []string{"Rectangle 1", "TextBox 2", "Rounded Rectangle 3"}, names)
}

func TestOutline(t *testing.T) {
	d := New()
	s := d.AddSlide()
	s.SetBackground(White)
	s.AddRectangle(In(0, 0, 13.333, 1.2), DarkBlue)
	s.AddTextBox(In(0.8, 0.25, 11, 0.8), "Agenda\nsecond line")
	s.AddBulletList(In(1.5, 1.8, 10, 5), []string{"a", "b"})

	o := d.Outline()
	require.Len(t, o.Slides, 1)
	so := o.Slides[0]
	require.Equal(t, 1, so.Number)
	require.Equal(t, "Agenda", so.Title)
	require.Equal(t, "FFFFFF", so.Background)
	require.Len(t, so.Shapes, 3)
	require.Equal(t, []string{"Agenda\nsecond line", "a\nb"}, so.Texts())
	require.Equal(t, In(0, 0, 13.333, 1.2), so.Shapes[0].Frame)
}

func TestColorFormats(t *testing.T) {
	require.Equal(t, "0078D4", AzureBlue.Hex())
	require.Equal(t, "FF0078D4", AzureBlue.ARGB())
	require.Equal(t, Red, Palette["red"])
	require.Len(t, Palette, 10)
}
