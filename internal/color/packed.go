package color

import "math"

// Shared exponent layout: three 9-bit mantissas and a 5-bit exponent with a
// bias of 15.
const (
	rgb9e5MantissaBits = 9
	rgb9e5ExpBias      = 15
	rgb9e5MaxExp       = 31
	rgb9e5MantissaMax  = 1<<rgb9e5MantissaBits - 1
)

// rgb9e5Max is the largest encodable component value.
var rgb9e5Max = float64(rgb9e5MantissaMax) / float64(1<<rgb9e5MantissaBits) *
	math.Exp2(rgb9e5MaxExp-rgb9e5ExpBias)

func clampRGB9E5(v float32) float64 {
	f := float64(v)
	if !(f > 0) {
		return 0
	}
	return math.Min(f, rgb9e5Max)
}

// PackRGB9E5 encodes three non-negative floats with a shared exponent:
// R in bits 0-8, G in 9-17, B in 18-26, exponent in 27-31.
func PackRGB9E5(r, g, b float32) uint32 {
	rc, gc, bc := clampRGB9E5(r), clampRGB9E5(g), clampRGB9E5(b)
	maxc := math.Max(rc, math.Max(gc, bc))

	expShared := -rgb9e5ExpBias - 1
	if maxc > 0 {
		expShared = max(expShared, int(math.Floor(math.Log2(maxc))))
	}
	expShared += 1 + rgb9e5ExpBias

	denom := math.Exp2(float64(expShared - rgb9e5ExpBias - rgb9e5MantissaBits))
	if maxs := math.Floor(maxc/denom + 0.5); maxs == 1<<rgb9e5MantissaBits {
		denom *= 2
		expShared++
	}

	rs := uint32(math.Floor(rc/denom + 0.5))
	gs := uint32(math.Floor(gc/denom + 0.5))
	bs := uint32(math.Floor(bc/denom + 0.5))
	return rs&rgb9e5MantissaMax |
		(gs&rgb9e5MantissaMax)<<9 |
		(bs&rgb9e5MantissaMax)<<18 |
		uint32(expShared)<<27
}

// UnpackRGB9E5 decodes a shared exponent value produced by PackRGB9E5.
func UnpackRGB9E5(v uint32) (r, g, b float32) {
	exp := int(v >> 27)
	scale := math.Exp2(float64(exp - rgb9e5ExpBias - rgb9e5MantissaBits))
	r = float32(float64(v&rgb9e5MantissaMax) * scale)
	g = float32(float64((v>>9)&rgb9e5MantissaMax) * scale)
	b = float32(float64((v>>18)&rgb9e5MantissaMax) * scale)
	return r, g, b
}

// PackR11G11B10 packs R and G as float11 and B as float10: R in bits 0-10,
// G in 11-21, B in 22-31.
func PackR11G11B10(r, g, b float32) uint32 {
	return FloatToFloat11(r) | FloatToFloat11(g)<<11 | FloatToFloat10(b)<<22
}

// UnpackR11G11B10 reverses PackR11G11B10.
func UnpackR11G11B10(v uint32) (r, g, b float32) {
	return Float11ToFloat(v), Float11ToFloat(v >> 11), Float10ToFloat(v >> 22)
}
