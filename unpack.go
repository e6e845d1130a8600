package pixfmt

import (
	"math"

	"github.com/gogpu/pixfmt/internal/color"
)

// UnpackColour reads one pixel of format f from the start of src.
//
// Luminance formats replicate L into R, G and B. Channels the format does
// not store read as 0, except alpha which reads as 1.
func UnpackColour(f PixelFormat, src []byte) (ColourValue, error) {
	if err := checkPixel(f, len(src)); err != nil {
		return ColourValue{}, err
	}
	return colourFromF32(unpackPixel(descriptorOf(f), f, src)), nil
}

// UnpackRGBA is UnpackColour returning the channels separately.
func UnpackRGBA(f PixelFormat, src []byte) (r, g, b, a float32, err error) {
	c, err := UnpackColour(f, src)
	return c.R, c.G, c.B, c.A, err
}

// UnpackBytes reads one pixel of format f quantised to 8 bits per channel.
// Normalised formats scale to [0,255]; integer formats clamp their raw value
// to [0,255]. A format without alpha reports 255. The result is lossy for
// wider formats.
func UnpackBytes(f PixelFormat, src []byte) (r, g, b, a uint8, err error) {
	if err := checkPixel(f, len(src)); err != nil {
		return 0, 0, 0, 0, err
	}
	d := descriptorOf(f)
	if isFixedNative(d) {
		ch := unpackFixedNative(d, src, 8)
		return uint8(ch[0]), uint8(ch[1]), uint8(ch[2]), uint8(ch[3]), nil
	}
	c := unpackPixel(d, f, src)
	if d.Flags.Has(FlagInteger) {
		a = 255
		if d.Flags.Has(FlagHasAlpha) {
			a = rawByte(c.A)
		}
		return rawByte(c.R), rawByte(c.G), rawByte(c.B), a, nil
	}
	u := color.F32ToU8(c)
	return u.R, u.G, u.B, u.A, nil
}

func rawByte(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// unpackPixel decodes one pixel. The format must be accessible and src long
// enough.
func unpackPixel(d *FormatDescriptor, f PixelFormat, src []byte) color.ColorF32 {
	switch {
	case f == PF_R11G11B10_FLOAT:
		r, g, b := color.UnpackR11G11B10(color.ReadUint(src, 4, color.HostBigEndian))
		return color.ColorF32{R: r, G: g, B: b, A: 1}
	case f == PF_R9G9B9E5_SHAREDEXP:
		r, g, b := color.UnpackRGB9E5(color.ReadUint(src, 4, color.HostBigEndian))
		return color.ColorF32{R: r, G: g, B: b, A: 1}
	case isFixedNative(d):
		v := color.ReadUint(src, d.ElemBytes, color.HostBigEndian)
		var ch [4]float32
		for i, bits := range d.BitCounts {
			if bits == 0 {
				continue
			}
			ch[i] = color.FixedToFloat((v&d.Masks[i])>>uint(d.Shifts[i]), bits)
		}
		return finishChannels(d, ch)
	default:
		return unpackArray(d, src)
	}
}

// unpackFixedNative returns the channels of a native fixed-point pixel
// rescaled to dstBits bits, with luminance and missing alpha applied.
func unpackFixedNative(d *FormatDescriptor, src []byte, dstBits int) [4]uint32 {
	v := color.ReadUint(src, d.ElemBytes, color.HostBigEndian)
	var ch [4]uint32
	for i, bits := range d.BitCounts {
		if bits == 0 {
			continue
		}
		ch[i] = color.FixedToFixed((v&d.Masks[i])>>uint(d.Shifts[i]), bits, dstBits)
	}
	if d.Flags.Has(FlagLuminance) {
		ch[1], ch[2] = ch[0], ch[0]
	}
	if d.BitCounts[3] == 0 {
		ch[3] = uint32(1)<<uint(dstBits) - 1
	}
	return ch
}

// unpackArray decodes formats that store each channel as its own memory
// element in host byte order.
func unpackArray(d *FormatDescriptor, src []byte) color.ColorF32 {
	size := d.channelBytes()
	bits := size * 8
	var ch [4]float32
	for i := 0; i < d.ComponentCount; i++ {
		raw := color.ReadUint(src[i*size:], size, color.HostBigEndian)
		var v float32
		switch d.ComponentType {
		case ComponentByte, ComponentShort:
			if d.snorm {
				v = color.SnormToFloat(raw, bits)
			} else {
				v = color.FixedToFloat(raw, bits)
			}
		case ComponentFloat16:
			v = color.HalfToFloat(uint16(raw))
		case ComponentFloat32:
			v = math.Float32frombits(raw)
		case ComponentUInt:
			v = float32(raw)
		case ComponentSInt:
			v = float32(color.SignExtend(raw, bits))
		}
		ch[storedChannel(d, i)] = v
	}
	return finishChannels(d, ch)
}

// finishChannels applies luminance replication and the missing-alpha
// default.
func finishChannels(d *FormatDescriptor, ch [4]float32) color.ColorF32 {
	if d.Flags.Has(FlagLuminance) {
		ch[1], ch[2] = ch[0], ch[0]
	}
	if !d.Flags.Has(FlagHasAlpha) {
		ch[3] = 1
	}
	return color.ColorF32{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}
