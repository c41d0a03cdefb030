package deck

import "fmt"

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as six upper-case hex digits, the form used by a:srgbClr.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the color with a fully opaque alpha prefix.
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

// Named colors shared by every slide.
var (
	DarkBlue   = RGB(0x00, 0x33, 0x66)
	AzureBlue  = RGB(0x00, 0x78, 0xD4)
	LightBlue  = RGB(0xDE, 0xEC, 0xF9)
	White      = RGB(0xFF, 0xFF, 0xFF)
	DarkGray   = RGB(0x33, 0x33, 0x33)
	MediumGray = RGB(0x66, 0x66, 0x66)
	LightGray  = RGB(0xF2, 0xF2, 0xF2)
	Green      = RGB(0x10, 0x7C, 0x10)
	Orange     = RGB(0xFF, 0x8C, 0x00)
	Red        = RGB(0xD1, 0x34, 0x38)
)

// Palette maps semantic color names to their values.
var Palette = map[string]Color{
	"dark blue":   DarkBlue,
	"azure blue":  AzureBlue,
	"light blue":  LightBlue,
	"white":       White,
	"dark gray":   DarkGray,
	"medium gray": MediumGray,
	"light gray":  LightGray,
	"green":       Green,
	"orange":      Orange,
	"red":         Red,
}
