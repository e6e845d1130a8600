// Package color provides the per-channel numeric kernels used by pixfmt to
// move colour values between storage encodings: normalised fixed point,
// signed normalised, half and packed small floats, shared-exponent floats
// and host-order integers of 1 to 4 bytes.
//
// Everything here is a pure function of its arguments.
package color

// ColorF32 is the intermediate colour every generic conversion goes
// through. Components are unbounded: fixed-point encodings produce values
// in [0,1] (or [-1,1] when signed), float encodings any float32, integer
// encodings the raw integer value.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a colour quantised to 8 bits per channel.
type ColorU8 struct {
	R, G, B, A uint8
}

// Opaque is the value missing channels default to: zero colour, full alpha.
var Opaque = ColorF32{A: 1}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
