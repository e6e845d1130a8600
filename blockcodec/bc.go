package blockcodec

import (
	"encoding/binary"

	"github.com/gogpu/pixfmt"
)

// bc1 decodes DXT1 blocks: two RGB565 endpoints and 2-bit indices. When the
// first endpoint is not greater than the second, index 3 is transparent.
type bc1 struct{}

func (bc1) Output() pixfmt.PixelFormat { return pixfmt.PF_BYTE_RGBA }

func (bc1) DecodeBlock(dst, block []byte) {
	decodeColour(dst, block, true)
}

// bc2 decodes DXT2 and DXT3 blocks: explicit 4-bit alpha followed by a
// colour block.
type bc2 struct{}

func (bc2) Output() pixfmt.PixelFormat { return pixfmt.PF_BYTE_RGBA }

func (bc2) DecodeBlock(dst, block []byte) {
	decodeColour(dst, block[8:], false)
	alpha := binary.LittleEndian.Uint64(block)
	for i := 0; i < 16; i++ {
		dst[i*4+3] = byte(alpha>>(4*i)&0xF) * 17
	}
}

// bc3 decodes DXT4 and DXT5 blocks: interpolated alpha followed by a colour
// block.
type bc3 struct{}

func (bc3) Output() pixfmt.PixelFormat { return pixfmt.PF_BYTE_RGBA }

func (bc3) DecodeBlock(dst, block []byte) {
	decodeColour(dst, block[8:], false)
	var alpha [16]int
	decodeChannel(&alpha, block, false)
	for i, a := range alpha {
		dst[i*4+3] = byte(a)
	}
}

// bc4 decodes single-channel blocks into red.
type bc4 struct {
	signed bool
}

func (d bc4) Output() pixfmt.PixelFormat {
	if d.signed {
		return pixfmt.PF_R8_SNORM
	}
	return pixfmt.PF_BYTE_RGBA
}

func (d bc4) DecodeBlock(dst, block []byte) {
	var red [16]int
	decodeChannel(&red, block, d.signed)
	if d.signed {
		for i, r := range red {
			dst[i] = byte(int8(r))
		}
		return
	}
	for i, r := range red {
		copy(dst[i*4:i*4+4], []byte{byte(r), 0, 0, 0xFF})
	}
}

// bc5 decodes two-channel blocks into red and green.
type bc5 struct {
	signed bool
}

func (d bc5) Output() pixfmt.PixelFormat {
	if d.signed {
		return pixfmt.PF_R8G8_SNORM
	}
	return pixfmt.PF_BYTE_RGBA
}

func (d bc5) DecodeBlock(dst, block []byte) {
	var red, green [16]int
	decodeChannel(&red, block, d.signed)
	decodeChannel(&green, block[8:], d.signed)
	if d.signed {
		for i := range red {
			dst[i*2] = byte(int8(red[i]))
			dst[i*2+1] = byte(int8(green[i]))
		}
		return
	}
	for i := range red {
		copy(dst[i*4:i*4+4], []byte{byte(red[i]), byte(green[i]), 0, 0xFF})
	}
}

// decodeColour expands the 8-byte colour part of a BC1, BC2 or BC3 block
// into 16 RGBA pixels. Only BC1 honours the three-colour mode.
func decodeColour(dst, block []byte, threeColour bool) {
	c0 := binary.LittleEndian.Uint16(block)
	c1 := binary.LittleEndian.Uint16(block[2:])

	var pal [4][4]byte
	pal[0] = expand565(c0)
	pal[1] = expand565(c1)
	if c0 > c1 || !threeColour {
		for i := 0; i < 3; i++ {
			pal[2][i] = byte((2*int(pal[0][i]) + int(pal[1][i]) + 1) / 3)
			pal[3][i] = byte((int(pal[0][i]) + 2*int(pal[1][i]) + 1) / 3)
		}
		pal[2][3], pal[3][3] = 0xFF, 0xFF
	} else {
		for i := 0; i < 3; i++ {
			pal[2][i] = byte((int(pal[0][i]) + int(pal[1][i])) / 2)
		}
		pal[2][3] = 0xFF
		// pal[3] stays transparent black.
	}

	idx := binary.LittleEndian.Uint32(block[4:])
	for i := 0; i < 16; i++ {
		copy(dst[i*4:i*4+4], pal[idx>>(2*i)&3][:])
	}
}

func expand565(c uint16) [4]byte {
	r := byte(c >> 11 & 0x1F)
	g := byte(c >> 5 & 0x3F)
	b := byte(c & 0x1F)
	return [4]byte{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2, 0xFF}
}

// decodeChannel expands an 8-byte BC3 alpha or BC4 block: two endpoints
// and 3-bit indices. Signed endpoints are in [-127, 127].
func decodeChannel(out *[16]int, block []byte, signed bool) {
	var e0, e1, lo, hi int
	if signed {
		e0, e1 = max(int(int8(block[0])), -127), max(int(int8(block[1])), -127)
		lo, hi = -127, 127
	} else {
		e0, e1 = int(block[0]), int(block[1])
		lo, hi = 0, 255
	}

	var pal [8]int
	pal[0], pal[1] = e0, e1
	if e0 > e1 {
		for i := 1; i < 7; i++ {
			pal[i+1] = lerp(e0, e1, 7-i, i, 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			pal[i+1] = lerp(e0, e1, 5-i, i, 5)
		}
		pal[6], pal[7] = lo, hi
	}

	var bits uint64
	for i := 7; i >= 2; i-- {
		bits = bits<<8 | uint64(block[i])
	}
	for i := range out {
		out[i] = pal[bits>>(3*i)&7]
	}
}

// lerp returns (w0*a + w1*b) / d rounded half away from zero.
func lerp(a, b, w0, w1, d int) int {
	n := w0*a + w1*b
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
