package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// ColourValue is an RGBA colour with float32 channels. Normalised formats
// map to [0,1] (signed normalised to [-1,1]); float and integer formats carry
// their values unscaled.
type ColourValue struct {
	R, G, B, A float32
}

// Common colours.
var (
	Black       = ColourValue{0, 0, 0, 1}
	White       = ColourValue{1, 1, 1, 1}
	Transparent = ColourValue{}
)

// RGBA returns a ColourValue from its channels.
func RGBA(r, g, b, a float32) ColourValue {
	return ColourValue{R: r, G: g, B: b, A: a}
}

func (c ColourValue) f32() color.ColorF32 {
	return color.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colourFromF32(c color.ColorF32) ColourValue {
	return ColourValue{R: c.R, G: c.G, B: c.B, A: c.A}
}
