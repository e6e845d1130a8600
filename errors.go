package pixfmt

import "errors"

// Errors returned by the codec. Callers test with errors.Is; returned errors
// usually wrap one of these with context.
var (
	// ErrInvalidParameter is returned for arguments that break a documented
	// precondition: inaccessible formats, short buffers, pitches smaller than
	// the extents, or sub-volumes outside their parent.
	ErrInvalidParameter = errors.New("pixfmt: invalid parameter")

	// ErrUnsupportedConversion is returned when a bulk conversion would have
	// to encode or decode a compressed format.
	ErrUnsupportedConversion = errors.New("pixfmt: unsupported conversion")

	// ErrDimensionMismatch is returned when source and destination extents
	// differ.
	ErrDimensionMismatch = errors.New("pixfmt: dimension mismatch")
)
