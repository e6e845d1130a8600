package pixfmt

import "fmt"

// Box is a 3D region. Left, Top and Front are inclusive; Right, Bottom and
// Back are exclusive.
type Box struct {
	Left, Top, Front    int
	Right, Bottom, Back int
}

// NewBox returns the box at the origin with the given extents.
func NewBox(width, height, depth int) Box {
	return Box{Right: width, Bottom: height, Back: depth}
}

// Width returns the extent along x.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns the extent along y.
func (b Box) Height() int { return b.Bottom - b.Top }

// Depth returns the extent along z.
func (b Box) Depth() int { return b.Back - b.Front }

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0 || b.Depth() <= 0
}

// Contains reports whether def lies entirely within b.
func (b Box) Contains(def Box) bool {
	return def.Left >= b.Left && def.Top >= b.Top && def.Front >= b.Front &&
		def.Right <= b.Right && def.Bottom <= b.Bottom && def.Back <= b.Back &&
		def.Left <= def.Right && def.Top <= def.Bottom && def.Front <= def.Back
}

// sameExtents reports whether a and b have equal width, height and depth.
func sameExtents(a, b Box) bool {
	return a.Width() == b.Width() && a.Height() == b.Height() && a.Depth() == b.Depth()
}

// PixelBox is a view of pixel memory: a Box, the format of its pixels, and a
// byte slice starting at the box's first pixel. Pitches are in pixels, not
// bytes. A PixelBox never allocates or frees the memory it views.
type PixelBox struct {
	Box

	// Format is the pixel format of Data.
	Format PixelFormat

	// Data holds the pixels, starting at (Left, Top, Front).
	Data []byte

	// RowPitch is the distance between the starts of consecutive rows, in
	// pixels.
	RowPitch int

	// SlicePitch is the distance between the starts of consecutive slices,
	// in pixels.
	SlicePitch int
}

// NewPixelBox returns a consecutive view of data as a width x height x depth
// region of format f.
func NewPixelBox(width, height, depth int, f PixelFormat, data []byte) PixelBox {
	pb := PixelBox{Box: NewBox(width, height, depth), Format: f, Data: data}
	pb.SetConsecutive()
	return pb
}

// NewPixelBoxFromBox returns a consecutive view of data covering b.
func NewPixelBoxFromBox(b Box, f PixelFormat, data []byte) PixelBox {
	pb := PixelBox{Box: b, Format: f, Data: data}
	pb.SetConsecutive()
	return pb
}

// SetConsecutive sets the pitches so rows and slices are packed without
// gaps.
func (pb *PixelBox) SetConsecutive() {
	pb.RowPitch = pb.Width()
	pb.SlicePitch = pb.Width() * pb.Height()
}

// IsConsecutive reports whether rows and slices are packed without gaps.
func (pb PixelBox) IsConsecutive() bool {
	return pb.RowPitch == pb.Width() && pb.SlicePitch == pb.Width()*pb.Height()
}

// RowSkip returns the number of pixels between the end of one row and the
// start of the next.
func (pb PixelBox) RowSkip() int {
	return pb.RowPitch - pb.Width()
}

// SliceSkip returns the number of pixels between the end of one slice and
// the start of the next.
func (pb PixelBox) SliceSkip() int {
	return pb.SlicePitch - pb.Height()*pb.RowPitch
}

// ConsecutiveSize returns the number of bytes the box would occupy if it
// were consecutive.
func (pb PixelBox) ConsecutiveSize() int {
	return MemorySize(pb.Width(), pb.Height(), pb.Depth(), pb.Format)
}

// extentBytes returns the number of bytes of Data the box addresses with its
// current pitches.
func (pb PixelBox) extentBytes() int {
	if pb.Empty() {
		return 0
	}
	if IsCompressed(pb.Format) {
		return pb.ConsecutiveSize()
	}
	last := (pb.Depth()-1)*pb.SlicePitch + (pb.Height()-1)*pb.RowPitch + pb.Width()
	return last * NumElemBytes(pb.Format)
}

// validate checks that the pitches cover the extents and that Data holds
// every addressed byte.
func (pb PixelBox) validate() error {
	if pb.Empty() {
		return nil
	}
	if IsCompressed(pb.Format) {
		if !pb.IsConsecutive() {
			return fmt.Errorf("%w: compressed %v box must be consecutive", ErrInvalidParameter, pb.Format)
		}
	} else if pb.RowPitch < pb.Width() || pb.SlicePitch < pb.Height()*pb.RowPitch {
		return fmt.Errorf("%w: pitches %d/%d too small for %dx%d",
			ErrInvalidParameter, pb.RowPitch, pb.SlicePitch, pb.Width(), pb.Height())
	}
	if need := pb.extentBytes(); len(pb.Data) < need {
		return fmt.Errorf("%w: %d bytes of data, box needs %d", ErrInvalidParameter, len(pb.Data), need)
	}
	return nil
}

// SubVolume returns a view of the part of pb described by def, which is in
// the same coordinates as pb.Box. The result shares pb's memory and pitches.
//
// def must lie within pb. A compressed box can only return itself, since
// its memory cannot be addressed per pixel.
func (pb PixelBox) SubVolume(def Box) (PixelBox, error) {
	if IsCompressed(pb.Format) {
		if def == pb.Box {
			return pb, nil
		}
		return PixelBox{}, fmt.Errorf("%w: cannot take a sub-volume of compressed %v data",
			ErrInvalidParameter, pb.Format)
	}
	if !pb.Contains(def) {
		return PixelBox{}, fmt.Errorf("%w: %+v is outside %+v", ErrInvalidParameter, def, pb.Box)
	}

	offset := (def.Left - pb.Left) +
		(def.Top-pb.Top)*pb.RowPitch +
		(def.Front-pb.Front)*pb.SlicePitch
	offset *= NumElemBytes(pb.Format)
	if offset > len(pb.Data) {
		return PixelBox{}, fmt.Errorf("%w: sub-volume offset %d beyond %d bytes",
			ErrInvalidParameter, offset, len(pb.Data))
	}

	return PixelBox{
		Box:        def,
		Format:     pb.Format,
		Data:       pb.Data[offset:],
		RowPitch:   pb.RowPitch,
		SlicePitch: pb.SlicePitch,
	}, nil
}

// pixelOffset returns the byte offset of pixel (x, y, z), relative to the
// box origin, or an error when it is outside the box or Data.
func (pb PixelBox) pixelOffset(x, y, z int) (int, error) {
	if !IsAccessible(pb.Format) {
		return 0, fmt.Errorf("%w: format %v is not accessible", ErrInvalidParameter, pb.Format)
	}
	if x < 0 || y < 0 || z < 0 || x >= pb.Width() || y >= pb.Height() || z >= pb.Depth() {
		return 0, fmt.Errorf("%w: pixel (%d, %d, %d) outside %dx%dx%d box",
			ErrInvalidParameter, x, y, z, pb.Width(), pb.Height(), pb.Depth())
	}
	size := NumElemBytes(pb.Format)
	off := (x + y*pb.RowPitch + z*pb.SlicePitch) * size
	if off+size > len(pb.Data) {
		return 0, fmt.Errorf("%w: pixel (%d, %d, %d) beyond data", ErrInvalidParameter, x, y, z)
	}
	return off, nil
}

// ColourAt returns the colour of the pixel at (x, y, z), relative to the box
// origin.
func (pb PixelBox) ColourAt(x, y, z int) (ColourValue, error) {
	off, err := pb.pixelOffset(x, y, z)
	if err != nil {
		return ColourValue{}, err
	}
	return UnpackColour(pb.Format, pb.Data[off:])
}

// SetColourAt writes c to the pixel at (x, y, z), relative to the box
// origin.
func (pb PixelBox) SetColourAt(c ColourValue, x, y, z int) error {
	off, err := pb.pixelOffset(x, y, z)
	if err != nil {
		return err
	}
	return PackColour(c, pb.Format, pb.Data[off:])
}
