package pixfmt

import (
	"fmt"
	"math"

	"github.com/gogpu/pixfmt/internal/color"
)

// PackColour writes c as one pixel of format f at the start of dst.
//
// Unsigned normalised channels clamp to [0,1], signed normalised ones to
// [-1,1]. Float formats store the value as is. Integer formats store the
// rounded value clamped to the channel type. Luminance formats store R.
//
// f must be accessible and dst at least NumElemBytes(f) long; otherwise
// PackColour returns an error wrapping ErrInvalidParameter.
func PackColour(c ColourValue, f PixelFormat, dst []byte) error {
	if err := checkPixel(f, len(dst)); err != nil {
		return err
	}
	packPixel(descriptorOf(f), f, c.f32(), dst)
	return nil
}

// PackRGBA is PackColour with the channels given separately.
func PackRGBA(r, g, b, a float32, f PixelFormat, dst []byte) error {
	return PackColour(ColourValue{R: r, G: g, B: b, A: a}, f, dst)
}

// PackBytes writes 8-bit channels as one pixel of format f. Normalised
// formats treat 255 as 1; integer formats store the byte values unscaled.
func PackBytes(r, g, b, a uint8, f PixelFormat, dst []byte) error {
	if err := checkPixel(f, len(dst)); err != nil {
		return err
	}
	d := descriptorOf(f)
	if isFixedNative(d) {
		packFixedNative(d, [4]uint32{uint32(r), uint32(g), uint32(b), uint32(a)}, 8, dst)
		return nil
	}
	c := color.ColorF32{R: float32(r), G: float32(g), B: float32(b), A: float32(a)}
	if !d.Flags.Has(FlagInteger) {
		c = color.U8ToF32(color.ColorU8{R: r, G: g, B: b, A: a})
	}
	packPixel(d, f, c, dst)
	return nil
}

// checkPixel validates the common preconditions of single pixel access.
func checkPixel(f PixelFormat, n int) error {
	if !IsAccessible(f) {
		return fmt.Errorf("%w: format %v is not accessible", ErrInvalidParameter, f)
	}
	if n < NumElemBytes(f) {
		return fmt.Errorf("%w: %d byte buffer for %d byte %v pixel",
			ErrInvalidParameter, n, NumElemBytes(f), f)
	}
	return nil
}

// isFixedNative reports whether d is a native-endian fixed-point layout that
// the mask and shift codec handles.
func isFixedNative(d *FormatDescriptor) bool {
	return d.Flags&(FlagNativeEndian|FlagFloat) == FlagNativeEndian
}

// channels orders a colour as R, G, B, A.
func channels(c color.ColorF32) [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// packPixel encodes c into dst. The format must be accessible and dst long
// enough.
func packPixel(d *FormatDescriptor, f PixelFormat, c color.ColorF32, dst []byte) {
	switch {
	case f == PF_R11G11B10_FLOAT:
		color.WriteUint(dst, 4, color.PackR11G11B10(c.R, c.G, c.B), color.HostBigEndian)
	case f == PF_R9G9B9E5_SHAREDEXP:
		color.WriteUint(dst, 4, color.PackRGB9E5(c.R, c.G, c.B), color.HostBigEndian)
	case isFixedNative(d):
		var fixed [4]uint32
		ch := channels(c)
		for i, bits := range d.BitCounts {
			fixed[i] = color.FloatToFixed(ch[i], bits)
		}
		packFixedNative(d, fixed, 0, dst)
	default:
		packArray(d, c, dst)
	}
}

// packFixedNative assembles a host-order integer from per-channel fixed
// point values of srcBits bits each. srcBits 0 means the values already have
// the channel widths.
func packFixedNative(d *FormatDescriptor, fixed [4]uint32, srcBits int, dst []byte) {
	var v uint32
	for i, bits := range d.BitCounts {
		if bits == 0 {
			continue
		}
		x := fixed[i]
		if srcBits != 0 {
			x = color.FixedToFixed(x, srcBits, bits)
		}
		v |= (x << uint(d.Shifts[i])) & d.Masks[i]
	}
	// Unused padding bits read back as ones.
	if d.BitCounts[3] == 0 {
		v |= d.Masks[3]
	}
	color.WriteUint(dst, d.ElemBytes, v, color.HostBigEndian)
}

// storedChannel maps the i-th stored channel of an array format to its
// R, G, B, A index: channels are stored in RGBA order, except that the last
// stored channel of a format with alpha and fewer than four channels is
// alpha (PF_BYTE_LA).
func storedChannel(d *FormatDescriptor, i int) int {
	if d.Flags.Has(FlagHasAlpha) && d.ComponentCount < 4 && i == d.ComponentCount-1 {
		return 3
	}
	return i
}

// packArray encodes formats that store each channel as its own memory
// element in host byte order.
func packArray(d *FormatDescriptor, c color.ColorF32, dst []byte) {
	size := d.channelBytes()
	ch := channels(c)
	for i := 0; i < d.ComponentCount; i++ {
		v := ch[storedChannel(d, i)]
		bits := size * 8
		var raw uint32
		switch d.ComponentType {
		case ComponentByte, ComponentShort:
			if d.snorm {
				raw = color.FloatToSnorm(v, bits)
			} else {
				raw = color.FloatToFixed(v, bits)
			}
		case ComponentFloat16:
			raw = uint32(color.FloatToHalf(v))
		case ComponentFloat32:
			raw = math.Float32bits(v)
		case ComponentUInt:
			raw = color.FloatToUint(v, bits)
		case ComponentSInt:
			raw = color.FloatToSint(v, bits)
		}
		color.WriteUint(dst[i*size:], size, raw, color.HostBigEndian)
	}
}
