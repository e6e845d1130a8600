package blockcodec

import (
	"encoding/binary"

	"github.com/gogpu/pixfmt"
)

// etc1 decodes ETC1 blocks: a big-endian 64-bit word holding two base
// colours, one per half-block, and a 2-bit modifier index per pixel.
type etc1 struct{}

func (etc1) Output() pixfmt.PixelFormat { return pixfmt.PF_BYTE_RGBA }

func (etc1) DecodeBlock(dst, block []byte) {
	v := binary.BigEndian.Uint64(block)
	hi := uint32(v >> 32)
	diff := hi&2 != 0
	flip := hi&1 != 0
	tables := [2]uint32{hi >> 5 & 7, hi >> 2 & 7}

	var base [2][3]int32
	for c := 0; c < 3; c++ {
		shift := 31 - 8*c // top bit of the colour's byte
		if diff {
			b := int32(hi >> (shift - 4) & 0x1F)
			d := int32(hi>>(shift-7)&7) << 29 >> 29
			base[0][c] = extend5(b)
			base[1][c] = extend5((b + d) & 0x1F)
		} else {
			base[0][c] = extend4(int32(hi >> (shift - 3) & 0xF))
			base[1][c] = extend4(int32(hi >> (shift - 7) & 0xF))
		}
	}

	lo := uint32(v)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			half := x >> 1
			if flip {
				half = y >> 1
			}
			j := uint(x*4 + y)
			index := (lo>>(16+j)&1)<<1 | lo>>j&1
			mod := modifiers[tables[half]][unscramble[index]]

			p := dst[(y*4+x)*4:]
			for c := 0; c < 3; c++ {
				p[c] = clamp8(base[half][c] + mod)
			}
			p[3] = 0xFF
		}
	}
}

// modifiers holds the eight intensity tables in ascending order.
var modifiers = [8][4]int32{
	{-8, -2, 2, 8},
	{-17, -5, 5, 17},
	{-29, -9, 9, 29},
	{-42, -13, 13, 42},
	{-60, -18, 18, 60},
	{-80, -24, 24, 80},
	{-106, -33, 33, 106},
	{-183, -47, 47, 183},
}

// unscramble maps a pixel index (small positive, large positive, small
// negative, large negative) to its column in modifiers.
var unscramble = [4]uint32{2, 3, 1, 0}

func extend4(x int32) int32 { return x<<4 | x }

func extend5(x int32) int32 { return x<<3 | x>>2 }

func clamp8(x int32) byte {
	return byte(min(max(x, 0), 255))
}
