package color

import "math"

// maxValue returns the largest unsigned value representable in bits bits.
func maxValue(bits int) uint64 {
	if bits <= 0 {
		return 0
	}
	if bits >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << uint(bits)) - 1
}

// FixedToFixed rescales an unsigned normalised value from n bits to p bits.
// Narrowing drops the low bits; widening maps 0 to 0 and the n-bit maximum
// to the p-bit maximum, scaling everything in between.
func FixedToFixed(value uint32, n, p int) uint32 {
	switch {
	case n == p:
		return value
	case n <= 0 || p <= 0:
		return 0
	case n > p:
		return value >> uint(n-p)
	}
	nMax := maxValue(n)
	v := uint64(value) & nMax
	switch v {
	case 0:
		return 0
	case nMax:
		return uint32(maxValue(p))
	}
	return uint32((v*maxValue(p) + nMax/2) / nMax)
}

// FloatToFixed converts v in [0,1] to an unsigned normalised integer of the
// given width, rounding to nearest. Values outside [0,1] (and NaN) clamp.
func FloatToFixed(v float32, bits int) uint32 {
	if bits <= 0 || !(v > 0) {
		return 0
	}
	maxV := maxValue(bits)
	if v >= 1 {
		return uint32(maxV)
	}
	return uint32(float64(v)*float64(maxV) + 0.5)
}

// FixedToFloat converts an unsigned normalised integer of the given width to
// [0,1]. A zero-width channel yields 0.
func FixedToFloat(value uint32, bits int) float32 {
	if bits <= 0 {
		return 0
	}
	maxV := maxValue(bits)
	return float32(float64(uint64(value)&maxV) / float64(maxV))
}

// FloatToSnorm converts v in [-1,1] to a signed normalised integer of the
// given width, returned as its two's complement bit pattern.
func FloatToSnorm(v float32, bits int) uint32 {
	if bits <= 1 || v != v {
		return 0
	}
	scale := float64(maxValue(bits - 1))
	f := math.Max(-1, math.Min(1, float64(v)))
	i := int64(math.Round(f * scale))
	return uint32(uint64(i) & maxValue(bits))
}

// SnormToFloat converts a two's complement signed normalised value of the
// given width to [-1,1]. The most negative code maps to -1 as well.
func SnormToFloat(value uint32, bits int) float32 {
	if bits <= 1 {
		return 0
	}
	i := SignExtend(value, bits)
	f := float64(i) / float64(maxValue(bits-1))
	if f < -1 {
		f = -1
	}
	return float32(f)
}

// SignExtend interprets the low bits of value as a two's complement integer.
func SignExtend(value uint32, bits int) int64 {
	if bits <= 0 {
		return 0
	}
	if bits >= 32 {
		return int64(int32(value))
	}
	shift := uint(64 - bits)
	return int64(uint64(value)<<shift) >> shift
}

// FloatToUint converts v to an unsigned integer of the given width, rounding
// and clamping to [0, 2^bits-1].
func FloatToUint(v float32, bits int) uint32 {
	if bits <= 0 || !(v > 0) {
		return 0
	}
	maxV := float64(maxValue(bits))
	f := math.Round(float64(v))
	if f >= maxV {
		return uint32(maxV)
	}
	return uint32(f)
}

// FloatToSint converts v to a signed integer of the given width, rounding and
// clamping to the type's range, returned as its two's complement bit
// pattern.
func FloatToSint(v float32, bits int) uint32 {
	if bits <= 0 || v != v {
		return 0
	}
	hi := float64(maxValue(bits - 1))
	lo := -hi - 1
	f := math.Max(lo, math.Min(hi, math.Round(float64(v))))
	return uint32(uint64(int64(f)) & maxValue(bits))
}
