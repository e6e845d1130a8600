package blockcodec

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixfmt"
)

var (
	// ErrUnsupportedFormat is returned for formats with no registered decoder.
	ErrUnsupportedFormat = errors.New("blockcodec: unsupported format")
	// ErrShortData is returned when the source holds fewer blocks than the
	// image needs.
	ErrShortData = errors.New("blockcodec: source data too short")
)

// Decoder expands single compressed blocks.
type Decoder interface {
	// Output is the uncompressed format DecodeBlock writes.
	Output() pixfmt.PixelFormat
	// DecodeBlock writes the 16 pixels of block to dst in row order, four
	// pixels per row, each in the Output format.
	DecodeBlock(dst, block []byte)
}

var decoders = gpucontext.NewRegistry[Decoder]()

func init() {
	Register(pixfmt.PF_DXT1, func() Decoder { return bc1{} })
	Register(pixfmt.PF_DXT2, func() Decoder { return bc2{} })
	Register(pixfmt.PF_DXT3, func() Decoder { return bc2{} })
	Register(pixfmt.PF_DXT4, func() Decoder { return bc3{} })
	Register(pixfmt.PF_DXT5, func() Decoder { return bc3{} })
	Register(pixfmt.PF_BC4_UNORM, func() Decoder { return bc4{} })
	Register(pixfmt.PF_BC4_SNORM, func() Decoder { return bc4{signed: true} })
	Register(pixfmt.PF_BC5_UNORM, func() Decoder { return bc5{} })
	Register(pixfmt.PF_BC5_SNORM, func() Decoder { return bc5{signed: true} })
	Register(pixfmt.PF_ETC1_RGB8, func() Decoder { return etc1{} })
}

// Register installs the decoder factory for a compressed format, replacing
// any existing one. It is safe for concurrent use.
func Register(f pixfmt.PixelFormat, factory func() Decoder) {
	decoders.Register(pixfmt.FormatName(f), factory)
}

// Supported reports whether f has a registered decoder.
func Supported(f pixfmt.PixelFormat) bool {
	return decoders.Has(pixfmt.FormatName(f))
}

// Formats lists the formats with a registered decoder in code order.
func Formats() []pixfmt.PixelFormat {
	var out []pixfmt.PixelFormat
	for _, name := range decoders.Available() {
		if f := pixfmt.FormatFromName(name, false, true); f != pixfmt.PF_UNKNOWN {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}

// Decode decompresses a width x height image of format f from src into dst,
// which must have the same extents and a depth of one. Partial blocks at the
// right and bottom edges are clipped.
func Decode(src []byte, f pixfmt.PixelFormat, width, height int, dst pixfmt.PixelBox) error {
	if !pixfmt.IsCompressed(f) {
		return fmt.Errorf("blockcodec: %v is not compressed: %w", f, pixfmt.ErrInvalidParameter)
	}
	if !Supported(f) {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("blockcodec: extent %dx%d: %w", width, height, pixfmt.ErrInvalidParameter)
	}
	if dst.Width() != width || dst.Height() != height || dst.Depth() != 1 {
		return fmt.Errorf("blockcodec: %w: image %dx%d, destination %dx%dx%d", pixfmt.ErrDimensionMismatch,
			width, height, dst.Width(), dst.Height(), dst.Depth())
	}
	if need := pixfmt.MemorySize(width, height, 1, f); len(src) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortData, len(src), need)
	}

	dec := decoders.Get(pixfmt.FormatName(f))
	out := dec.Output()
	pixfmt.Logger().Debug("blockcodec: decode",
		"format", f, "width", width, "height", height, "via", out)

	buf := decodeBlocks(dec, src, f, width, height)
	return pixfmt.BulkPixelConversion(pixfmt.NewPixelBox(width, height, 1, out, buf), dst)
}

// decodeBlocks expands every block of src into a consecutive buffer in the
// decoder's output format.
func decodeBlocks(dec Decoder, src []byte, f pixfmt.PixelFormat, width, height int) []byte {
	bw, bh, bb := pixfmt.BlockSize(f)
	eb := pixfmt.NumElemBytes(dec.Output())
	buf := make([]byte, width*height*eb)
	tile := make([]byte, bw*bh*eb)

	blocksX := (width + bw - 1) / bw
	off := 0
	for by := 0; by*bh < height; by++ {
		for bx := 0; bx < blocksX; bx++ {
			dec.DecodeBlock(tile, src[off:off+bb])
			off += bb

			x0, y0 := bx*bw, by*bh
			cols := min(bw, width-x0)
			for y := 0; y < bh && y0+y < height; y++ {
				row := ((y0+y)*width + x0) * eb
				copy(buf[row:row+cols*eb], tile[y*bw*eb:])
			}
		}
	}
	return buf
}
