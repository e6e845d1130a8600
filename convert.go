package pixfmt

import "fmt"

// Conversion paths, as reported in debug logs.
const (
	pathCopy    = "copy"
	pathSwizzle = "swizzle"
	pathGeneric = "generic"
)

// BulkPixelConversion converts every pixel of src into dst. The boxes must
// have equal extents; their pitches are independent.
//
// The paths, in order of preference:
//   - equal formats: a row-wise copy (compressed data is copied whole)
//   - either format compressed: ErrUnsupportedConversion
//   - either format otherwise inaccessible: ErrInvalidParameter
//   - both formats byte-addressable per channel: a byte shuffle
//   - everything else: unpack each pixel to float RGBA and pack it again
//
// Boxes whose pitches do not cover their extents, or whose data is too short,
// return ErrInvalidParameter and leave dst untouched.
func BulkPixelConversion(src, dst PixelBox) error {
	if !sameExtents(src.Box, dst.Box) {
		return fmt.Errorf("%w: source %dx%dx%d, destination %dx%dx%d", ErrDimensionMismatch,
			src.Width(), src.Height(), src.Depth(), dst.Width(), dst.Height(), dst.Depth())
	}

	if src.Format == dst.Format {
		if err := validatePair(src, dst); err != nil {
			return err
		}
		logPath(src, dst, pathCopy)
		copyBox(src, dst)
		return nil
	}

	if IsCompressed(src.Format) || IsCompressed(dst.Format) {
		Logger().Warn("pixfmt: compressed conversion refused",
			"src", src.Format, "dst", dst.Format)
		return fmt.Errorf("%w: %v to %v", ErrUnsupportedConversion, src.Format, dst.Format)
	}
	if !IsAccessible(src.Format) || !IsAccessible(dst.Format) {
		return fmt.Errorf("%w: cannot convert %v to %v", ErrInvalidParameter, src.Format, dst.Format)
	}
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if src.Empty() {
		return nil
	}

	if plan, ok := newSwizzle(src.Format, dst.Format); ok {
		logPath(src, dst, pathSwizzle)
		forEachRow(src, dst, plan.row)
		return nil
	}

	logPath(src, dst, pathGeneric)
	sd, dd := descriptorOf(src.Format), descriptorOf(dst.Format)
	forEachRow(src, dst, func(s, d []byte, width int) {
		for x := 0; x < width; x++ {
			c := unpackPixel(sd, src.Format, s[x*sd.ElemBytes:])
			packPixel(dd, dst.Format, c, d[x*dd.ElemBytes:])
		}
	})
	return nil
}

// ConvertPixels converts count consecutive pixels from src in srcFmt to dst
// in dstFmt.
func ConvertPixels(src []byte, srcFmt PixelFormat, dst []byte, dstFmt PixelFormat, count int) error {
	return BulkPixelConversion(
		NewPixelBox(count, 1, 1, srcFmt, src),
		NewPixelBox(count, 1, 1, dstFmt, dst),
	)
}

func validatePair(src, dst PixelBox) error {
	if err := src.validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}

func logPath(src, dst PixelBox, path string) {
	Logger().Debug("pixfmt: bulk conversion",
		"src", src.Format, "dst", dst.Format,
		"width", src.Width(), "height", src.Height(), "depth", src.Depth(),
		"path", path)
}

// copyBox copies src to dst, which share a format and extents.
func copyBox(src, dst PixelBox) {
	if src.Empty() {
		return
	}
	if IsCompressed(src.Format) {
		n := src.ConsecutiveSize()
		copy(dst.Data[:n], src.Data[:n])
		return
	}
	if src.IsConsecutive() && dst.IsConsecutive() {
		n := src.ConsecutiveSize()
		copy(dst.Data[:n], src.Data[:n])
		return
	}
	size := NumElemBytes(src.Format)
	forEachRow(src, dst, func(s, d []byte, width int) {
		copy(d[:width*size], s[:width*size])
	})
}

// forEachRow calls fn with the start of every row of src and the matching
// row of dst. Both boxes must have been validated.
func forEachRow(src, dst PixelBox, fn func(s, d []byte, width int)) {
	ss, ds := NumElemBytes(src.Format), NumElemBytes(dst.Format)
	width := src.Width()
	for z := 0; z < src.Depth(); z++ {
		for y := 0; y < src.Height(); y++ {
			so := (z*src.SlicePitch + y*src.RowPitch) * ss
			do := (z*dst.SlicePitch + y*dst.RowPitch) * ds
			fn(src.Data[so:], dst.Data[do:], width)
		}
	}
}
