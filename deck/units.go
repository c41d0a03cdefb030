package deck

import "fmt"

// EMU is a length in English Metric Units, the native unit of OOXML drawings.
type EMU int64

const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Inches converts a length in inches to EMU, truncating toward zero.
func Inches(in float64) EMU {
	return EMU(in * EMUPerInch)
}

// Points converts a length in points to EMU, truncating toward zero.
func Points(pt float64) EMU {
	return EMU(pt * EMUPerPoint)
}

// Inches reports the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / EMUPerInch
}

func (e EMU) String() string {
	return fmt.Sprintf("%.3fin", e.Inches())
}

// Rect is the frame of a shape: offset from the slide's top-left corner plus extent.
type Rect struct {
	Left   EMU
	Top    EMU
	Width  EMU
	Height EMU
}

// In builds a frame from inch values.
func In(left, top, width, height float64) Rect {
	return Rect{Left: Inches(left), Top: Inches(top), Width: Inches(width), Height: Inches(height)}
}

// At builds a frame from already converted lengths.
func At(left, top, width, height EMU) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x coordinate of the frame's right edge.
func (r Rect) Right() EMU { return r.Left + r.Width }

// Bottom returns the y coordinate of the frame's bottom edge.
func (r Rect) Bottom() EMU { return r.Top + r.Height }

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.Left >= outer.Left && r.Top >= outer.Top &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}
