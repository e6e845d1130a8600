// Package blockcodec decompresses block-compressed pixel data.
//
// pixfmt.BulkPixelConversion refuses compressed formats; this package is
// the way out of them. Decode expands DXT1 to DXT5 (BC1 to BC3), BC4, BC5
// and ETC1 data into any accessible pixfmt format:
//
//	dst := pixfmt.NewPixelBox(w, h, 1, pixfmt.PF_BYTE_RGBA, make([]byte, w*h*4))
//	if err := blockcodec.Decode(data, pixfmt.PF_DXT5, w, h, dst); err != nil {
//	    return err
//	}
//
// Decoders are looked up by format name in a registry. Register adds or
// replaces one, so formats without a built-in decoder (BC6H, BC7, PVRTC)
// can be supplied by the caller.
//
// Premultiplied DXT2 and DXT4 data is decoded as stored; colours are not
// divided by alpha.
package blockcodec
