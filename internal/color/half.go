package color

import (
	"math"

	"github.com/x448/float16"
)

// FloatToHalf returns the IEEE 754 binary16 bit pattern nearest to v.
func FloatToHalf(v float32) uint16 {
	return float16.Fromfloat32(v).Bits()
}

// HalfToFloat expands a binary16 bit pattern to float32.
func HalfToFloat(h uint16) float32 {
	return float16.Frombits(h).Float32()
}

// Unsigned small floats share binary16's 5-bit exponent and bias; they drop
// the sign and keep the top 6 (float11) or 5 (float10) mantissa bits.
const (
	float11MantissaDrop = 4
	float10MantissaDrop = 5

	halfMantissaBits = 10
	smallFloatBias   = 15
)

// FloatToFloat11 encodes v as an unsigned 11-bit float (5e6m).
// Negative values and -0 encode as 0.
func FloatToFloat11(v float32) uint32 {
	return encodeSmallFloat(v, float11MantissaDrop)
}

// Float11ToFloat decodes the low 11 bits of f.
func Float11ToFloat(f uint32) float32 {
	return HalfToFloat(uint16((f & 0x7FF) << float11MantissaDrop))
}

// FloatToFloat10 encodes v as an unsigned 10-bit float (5e5m).
func FloatToFloat10(v float32) uint32 {
	return encodeSmallFloat(v, float10MantissaDrop)
}

// Float10ToFloat decodes the low 10 bits of f.
func Float10ToFloat(f uint32) float32 {
	return HalfToFloat(uint16((f & 0x3FF) << float10MantissaDrop))
}

// encodeSmallFloat rounds v to nearest, ties to even, straight from its
// float32 bits.
func encodeSmallFloat(v float32, drop uint) uint32 {
	mbits := halfMantissaBits - drop
	inf := uint32(0x1F) << mbits
	if math.IsNaN(float64(v)) {
		// Exponent all ones, top mantissa bit set.
		return inf | 1<<(mbits-1)
	}
	if !(v > 0) {
		return 0
	}
	bits := math.Float32bits(v)
	if bits >= 0x7F800000 {
		return inf
	}
	exp := int(bits>>23) - 127 + smallFloatBias
	if bits>>23 == 0 || exp < -int(mbits) {
		// Below half the smallest denormal.
		return 0
	}

	mant := bits & 0x7FFFFF
	shift := 23 - uint32(mbits)
	var result uint32
	if exp > 0 {
		result = uint32(exp)<<mbits | mant>>shift
	} else {
		// Denormal: the implicit bit becomes explicit.
		mant |= 0x800000
		shift += uint32(1 - exp)
		result = mant >> shift
	}
	rest := mant & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rest > half || rest == half && result&1 == 1 {
		// A mantissa carry bumps the exponent and saturates to infinity.
		result++
	}
	return min(result, inf)
}
