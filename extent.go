package pixfmt

// BlockSize returns the compression block of f: its width and height in
// pixels and its size in bytes. Uncompressed formats report a 1x1 block of
// NumElemBytes(f) bytes.
func BlockSize(f PixelFormat) (width, height, bytes int) {
	d := descriptorOf(f)
	if !d.Flags.Has(FlagCompressed) {
		if d.ElemBytes == 0 {
			return 0, 0, 0
		}
		return 1, 1, d.ElemBytes
	}
	return d.block.width, d.block.height, d.block.bytes
}

// isPVRTC1 reports whether f is a first generation PowerVR format, whose
// size has a per-level minimum.
func isPVRTC1(f PixelFormat) bool {
	return f >= PF_PVRTC_RGB2 && f <= PF_PVRTC_RGBA4
}

// MemorySize returns the number of bytes needed to store a width x height x
// depth region of format f. Compressed formats round up to whole blocks.
// Non-positive extents and unknown formats yield 0.
func MemorySize(width, height, depth int, f PixelFormat) int {
	if width <= 0 || height <= 0 || depth <= 0 {
		return 0
	}
	d := descriptorOf(f)
	if !d.Flags.Has(FlagCompressed) {
		return width * height * depth * d.ElemBytes
	}

	b := d.block
	if isPVRTC1(f) {
		// PVRTC1 rounds each level up to at least two blocks a side.
		bpp := b.bytes * 8 / (b.width * b.height)
		w := max(width, 2*b.width)
		h := max(height, 8)
		return (w*h*bpp + 7) / 8 * depth
	}
	blocksX := (width + b.width - 1) / b.width
	blocksY := (height + b.height - 1) / b.height
	return blocksX * blocksY * b.bytes * depth
}

// IsValidExtent reports whether a width x height x depth region is a legal
// size for f. Block-compressed formats require whole blocks and a depth of
// 1; every other format accepts any extent, zero included. Negative extents
// are never valid.
func IsValidExtent(width, height, depth int, f PixelFormat) bool {
	if width < 0 || height < 0 || depth < 0 {
		return false
	}
	if !IsCompressed(f) {
		return true
	}
	b := descriptorOf(f).block
	if b.width == 0 || b.height == 0 {
		return false
	}
	return width%b.width == 0 && height%b.height == 0 && depth == 1
}
