// Package gpu maps pixfmt formats to WebGPU texture formats and uploads
// pixel boxes through the gpucontext texture interfaces.
//
// A pixfmt format maps to a gputypes.TextureFormat only when both describe
// the same bytes in memory. Formats with multi-byte channels map on
// little-endian hosts only, since GPU formats are little-endian.
//
// Usage:
//
//	if tf, ok := gpu.TextureFormat(box.Format); ok {
//	    // upload box.Data directly with gpu.DataLayout(box)
//	} else {
//	    // convert to gpu.UploadFormat(box.Format) first
//	}
package gpu

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/internal/color"
)

// byteFormats hold single-byte channels or block data and map on any host.
var byteFormats = map[pixfmt.PixelFormat]gputypes.TextureFormat{
	pixfmt.PF_R8:             gputypes.TextureFormatR8Unorm,
	pixfmt.PF_R8_SNORM:       gputypes.TextureFormatR8Snorm,
	pixfmt.PF_R8G8_SNORM:     gputypes.TextureFormatRG8Snorm,
	pixfmt.PF_R8G8B8A8_SNORM: gputypes.TextureFormatRGBA8Snorm,
	pixfmt.PF_R8_UINT:        gputypes.TextureFormatR8Uint,
	pixfmt.PF_R8G8_UINT:      gputypes.TextureFormatRG8Uint,
	pixfmt.PF_R8G8B8A8_UINT:  gputypes.TextureFormatRGBA8Uint,
	pixfmt.PF_R8_SINT:        gputypes.TextureFormatR8Sint,
	pixfmt.PF_R8G8_SINT:      gputypes.TextureFormatRG8Sint,
	pixfmt.PF_R8G8B8A8_SINT:  gputypes.TextureFormatRGBA8Sint,

	pixfmt.PF_DXT1:           gputypes.TextureFormatBC1RGBAUnorm,
	pixfmt.PF_DXT3:           gputypes.TextureFormatBC2RGBAUnorm,
	pixfmt.PF_DXT5:           gputypes.TextureFormatBC3RGBAUnorm,
	pixfmt.PF_BC4_UNORM:      gputypes.TextureFormatBC4RUnorm,
	pixfmt.PF_BC4_SNORM:      gputypes.TextureFormatBC4RSnorm,
	pixfmt.PF_BC5_UNORM:      gputypes.TextureFormatBC5RGUnorm,
	pixfmt.PF_BC5_SNORM:      gputypes.TextureFormatBC5RGSnorm,
	pixfmt.PF_BC6H_UF16:      gputypes.TextureFormatBC6HRGBUfloat,
	pixfmt.PF_BC6H_SF16:      gputypes.TextureFormatBC6HRGBFloat,
	pixfmt.PF_BC7_UNORM:      gputypes.TextureFormatBC7RGBAUnorm,
	pixfmt.PF_BC7_UNORM_SRGB: gputypes.TextureFormatBC7RGBAUnormSrgb,
}

// wideFormats have channels wider than a byte and match the GPU layout only
// on little-endian hosts.
var wideFormats = map[pixfmt.PixelFormat]gputypes.TextureFormat{
	pixfmt.PF_SHORT_GR:    gputypes.TextureFormatRG16Unorm,
	pixfmt.PF_SHORT_RGBA:  gputypes.TextureFormatRGBA16Unorm,
	pixfmt.PF_A2B10G10R10: gputypes.TextureFormatRGB10A2Unorm,

	pixfmt.PF_FLOAT16_R:          gputypes.TextureFormatR16Float,
	pixfmt.PF_FLOAT16_GR:         gputypes.TextureFormatRG16Float,
	pixfmt.PF_FLOAT16_RGBA:       gputypes.TextureFormatRGBA16Float,
	pixfmt.PF_FLOAT32_R:          gputypes.TextureFormatR32Float,
	pixfmt.PF_FLOAT32_GR:         gputypes.TextureFormatRG32Float,
	pixfmt.PF_FLOAT32_RGBA:       gputypes.TextureFormatRGBA32Float,
	pixfmt.PF_R11G11B10_FLOAT:    gputypes.TextureFormatRG11B10Ufloat,
	pixfmt.PF_R9G9B9E5_SHAREDEXP: gputypes.TextureFormatRGB9E5Ufloat,

	pixfmt.PF_R16_SNORM:          gputypes.TextureFormatR16Snorm,
	pixfmt.PF_R16G16_SNORM:       gputypes.TextureFormatRG16Snorm,
	pixfmt.PF_R16G16B16A16_SNORM: gputypes.TextureFormatRGBA16Snorm,

	pixfmt.PF_R16_UINT:          gputypes.TextureFormatR16Uint,
	pixfmt.PF_R16G16_UINT:       gputypes.TextureFormatRG16Uint,
	pixfmt.PF_R16G16B16A16_UINT: gputypes.TextureFormatRGBA16Uint,
	pixfmt.PF_R32_UINT:          gputypes.TextureFormatR32Uint,
	pixfmt.PF_R32G32_UINT:       gputypes.TextureFormatRG32Uint,
	pixfmt.PF_R32G32B32A32_UINT: gputypes.TextureFormatRGBA32Uint,
	pixfmt.PF_R16_SINT:          gputypes.TextureFormatR16Sint,
	pixfmt.PF_R16G16_SINT:       gputypes.TextureFormatRG16Sint,
	pixfmt.PF_R16G16B16A16_SINT: gputypes.TextureFormatRGBA16Sint,
	pixfmt.PF_R32_SINT:          gputypes.TextureFormatR32Sint,
	pixfmt.PF_R32G32_SINT:       gputypes.TextureFormatRG32Sint,
	pixfmt.PF_R32G32B32A32_SINT: gputypes.TextureFormatRGBA32Sint,
}

var (
	toGPU   = map[pixfmt.PixelFormat]gputypes.TextureFormat{}
	fromGPU = map[gputypes.TextureFormat]pixfmt.PixelFormat{}
)

func init() {
	add := func(pf pixfmt.PixelFormat, tf gputypes.TextureFormat) {
		toGPU[pf] = tf
		fromGPU[tf] = pf
	}
	add(pixfmt.PF_BYTE_RGBA, gputypes.TextureFormatRGBA8Unorm)
	add(pixfmt.PF_BYTE_BGRA, gputypes.TextureFormatBGRA8Unorm)
	for pf, tf := range byteFormats {
		add(pf, tf)
	}
	if !color.HostBigEndian {
		for pf, tf := range wideFormats {
			add(pf, tf)
		}
	}
	// ETC2 decoders read ETC1 data; the reverse does not hold.
	toGPU[pixfmt.PF_ETC1_RGB8] = gputypes.TextureFormatETC2RGB8Unorm
}

// TextureFormat returns the GPU format with the same memory layout as pf.
func TextureFormat(pf pixfmt.PixelFormat) (gputypes.TextureFormat, bool) {
	tf, ok := toGPU[pf]
	return tf, ok
}

// FromTextureFormat returns the pixfmt format with the same memory layout
// as tf, or PF_UNKNOWN.
func FromTextureFormat(tf gputypes.TextureFormat) pixfmt.PixelFormat {
	return fromGPU[tf]
}

// UploadFormat returns the format pf should be converted to before it is
// handed to a GPU: pf itself when it maps directly, otherwise the nearest
// format that maps and loses as little as possible. Depth and unknown
// formats return PF_UNKNOWN.
func UploadFormat(pf pixfmt.PixelFormat) pixfmt.PixelFormat {
	if _, ok := toGPU[pf]; ok {
		return pf
	}
	if !pf.IsValid() || pf == pixfmt.PF_UNKNOWN || pf.IsDepth() {
		return pixfmt.PF_UNKNOWN
	}

	var want pixfmt.PixelFormat
	switch {
	case pf.IsCompressed():
		want = pixfmt.PF_BYTE_RGBA
	case pf.IsInteger():
		want = integerUpload(pf)
	case pf.IsFloatingPoint():
		want = pixfmt.PF_FLOAT32_RGBA
		if maxBits(pf) <= 16 {
			want = pixfmt.PF_FLOAT16_RGBA
		}
	case pixfmt.IsSnorm(pf):
		want = pixfmt.PF_R8G8B8A8_SNORM
		if maxBits(pf) > 8 {
			want = pixfmt.PF_R16G16B16A16_SNORM
		}
	case maxBits(pf) > 8:
		want = pixfmt.PF_SHORT_RGBA
	default:
		want = pixfmt.PF_BYTE_RGBA
	}
	if _, ok := toGPU[want]; !ok {
		return pixfmt.PF_BYTE_RGBA
	}
	return want
}

func integerUpload(pf pixfmt.PixelFormat) pixfmt.PixelFormat {
	bits := maxBits(pf)
	if pixfmt.ComponentTypeOf(pf) == pixfmt.ComponentSInt {
		switch {
		case bits <= 8:
			return pixfmt.PF_R8G8B8A8_SINT
		case bits <= 16:
			return pixfmt.PF_R16G16B16A16_SINT
		}
		return pixfmt.PF_R32G32B32A32_SINT
	}
	switch {
	case bits <= 8:
		return pixfmt.PF_R8G8B8A8_UINT
	case bits <= 16:
		return pixfmt.PF_R16G16B16A16_UINT
	}
	return pixfmt.PF_R32G32B32A32_UINT
}

func maxBits(pf pixfmt.PixelFormat) int {
	d := pixfmt.BitDepths(pf)
	return slices.Max(d[:])
}

// DataLayout describes how box's bytes are laid out for a texture copy.
// For compressed formats rows are rows of blocks.
func DataLayout(box pixfmt.PixelBox) gputypes.TextureDataLayout {
	if box.Format.IsCompressed() {
		bw, bh, bb := pixfmt.BlockSize(box.Format)
		if bw == 0 {
			return gputypes.TextureDataLayout{}
		}
		return gputypes.TextureDataLayout{
			BytesPerRow:  uint32((box.Width() + bw - 1) / bw * bb),
			RowsPerImage: uint32((box.Height() + bh - 1) / bh),
		}
	}
	layout := gputypes.TextureDataLayout{
		BytesPerRow: uint32(box.RowPitch * box.Format.ElemBytes()),
	}
	if box.RowPitch > 0 {
		layout.RowsPerImage = uint32(box.SlicePitch / box.RowPitch)
	}
	return layout
}

// Extent returns the size of box as a texture extent.
func Extent(box pixfmt.PixelBox) gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(box.Width()),
		Height:             uint32(box.Height()),
		DepthOrArrayLayers: uint32(box.Depth()),
	}
}
