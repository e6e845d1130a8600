package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// Sources for one destination byte of a swizzle.
const (
	fillZero = -1
	fillOne  = -2
)

// swizzle converts between two formats whose channels are all unsigned
// 8-bit values at whole byte positions, by moving bytes. It produces exactly
// what the generic unpack/pack path would.
type swizzle struct {
	srcBytes, dstBytes int
	// from[i] is the source byte index for destination byte i, or one of
	// fillZero and fillOne.
	from [4]int
}

// byteLayout locates each channel of f within a pixel. pos[i] is the byte
// index of channel i (R, G, B, A) or -1 when absent; pad is the byte index
// of an unused padding byte or -1.
func byteLayout(f PixelFormat) (pos [4]int, pad int, ok bool) {
	d := descriptorOf(f)
	pos, pad = [4]int{-1, -1, -1, -1}, -1

	switch {
	case isFixedNative(d):
		for i, bits := range d.BitCounts {
			idx, aligned := nativeByteIndex(d, d.Shifts[i])
			switch {
			case bits == 0 && d.Masks[i] == 0:
				continue
			case !aligned:
				return pos, pad, false
			case bits == 0:
				if d.Masks[i]>>uint(d.Shifts[i]) != 0xFF {
					return pos, pad, false
				}
				pad = idx
			case bits == 8:
				pos[i] = idx
			default:
				return pos, pad, false
			}
		}
		return pos, pad, true

	case d.ComponentType == ComponentByte && d.channelBytes() == 1 &&
		!d.snorm && d.Flags&(FlagInteger|FlagFloat) == 0:
		for i := 0; i < d.ComponentCount; i++ {
			pos[storedChannel(d, i)] = i
		}
		return pos, pad, true
	}
	return pos, pad, false
}

// nativeByteIndex returns the memory index of the byte holding bits
// [shift, shift+8) of a native-endian pixel.
func nativeByteIndex(d *FormatDescriptor, shift int) (int, bool) {
	if shift%8 != 0 {
		return 0, false
	}
	if color.HostBigEndian {
		return d.ElemBytes - 1 - shift/8, true
	}
	return shift / 8, true
}

// newSwizzle builds the byte shuffle from src to dst, or reports false when
// either format is not byte-addressable.
func newSwizzle(src, dst PixelFormat) (swizzle, bool) {
	sp, _, ok := byteLayout(src)
	if !ok {
		return swizzle{}, false
	}
	dp, dpad, ok := byteLayout(dst)
	if !ok {
		return swizzle{}, false
	}

	// Where each RGBA channel comes from in the source, after luminance
	// replication and defaults.
	var chanFrom [4]int
	for i := range chanFrom {
		switch {
		case sp[i] >= 0:
			chanFrom[i] = sp[i]
		case i == 1 || i == 2:
			if IsLuminance(src) {
				chanFrom[i] = sp[0]
			} else {
				chanFrom[i] = fillZero
			}
		case i == 3:
			chanFrom[i] = fillOne
		default:
			chanFrom[i] = fillZero
		}
	}

	s := swizzle{srcBytes: NumElemBytes(src), dstBytes: NumElemBytes(dst)}
	for i := range s.from {
		s.from[i] = fillZero
	}
	for i, p := range dp {
		if p >= 0 {
			s.from[p] = chanFrom[i]
		}
	}
	if dpad >= 0 {
		s.from[dpad] = fillOne
	}
	return s, true
}

// row converts width pixels.
func (s swizzle) row(src, dst []byte, width int) {
	for x := 0; x < width; x++ {
		sp := src[x*s.srcBytes:]
		dp := dst[x*s.dstBytes : (x+1)*s.dstBytes]
		for i := range dp {
			switch from := s.from[i]; from {
			case fillZero:
				dp[i] = 0
			case fillOne:
				dp[i] = 0xFF
			default:
				dp[i] = sp[from]
			}
		}
	}
}
