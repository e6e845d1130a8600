// Package pixfmt describes pixel storage formats and converts pixel data
// between them.
//
// # Overview
//
// Every supported encoding has a PixelFormat code and an immutable
// FormatDescriptor: element size, flags, channel type and count, bit depths,
// and, for formats stored as one host-order integer, the mask and shift of
// each channel. Registry functions (NumElemBytes, BitDepths, FormatFromName,
// BNFExpression, FormatForBitDepths, IsValidExtent, MemorySize, ...) answer
// questions about formats without touching pixel data.
//
// The codec reads and writes single pixels (PackColour, UnpackColour and
// their RGBA and byte variants) and converts whole regions described by a
// PixelBox (BulkPixelConversion). A PixelBox is a view of caller memory: it
// never allocates or frees.
//
// # Quick Start
//
//	src := pixfmt.NewPixelBox(w, h, 1, pixfmt.PF_BYTE_RGBA, rgba)
//	dst := pixfmt.NewPixelBox(w, h, 1, pixfmt.PF_R5G6B5, make([]byte, pixfmt.MemorySize(w, h, 1, pixfmt.PF_R5G6B5)))
//	if err := pixfmt.BulkPixelConversion(src, dst); err != nil {
//	    log.Fatal(err)
//	}
//
// # Byte Order
//
// Formats named by channel from most to least significant bit (PF_A8R8G8B8,
// PF_R5G6B5, ...) are host-order integers, so their byte layout differs
// between little- and big-endian machines. The PF_BYTE_* aliases resolve at
// init to the format with a fixed byte order: PF_BYTE_RGBA is always the
// bytes R, G, B, A.
//
// # Compressed Formats
//
// Block-compressed formats can be described, sized and copied, but bulk
// conversion to or from them fails with ErrUnsupportedConversion. Package
// blockcodec decodes the common block formats.
//
// # Concurrency
//
// Registry and codec functions are safe for concurrent use. Converter
// splits large conversions across a worker pool.
//
// # Subpackages
//
//   - blockcodec: DXT, BC4, BC5 and ETC1 block decoders
//   - gpu: mapping to gputypes texture formats and texture upload
//   - cmd/pixfmt: command line tool to list, describe, convert and decode
package pixfmt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
