package pixfmt

import (
	"fmt"
	"strings"
)

// PixelFormat identifies a pixel storage format. The numeric values are
// stable and match those used by persisted texture assets.
type PixelFormat uint8

// Pixel formats.
//
// Formats whose names list channels from most to least significant bit
// (PF_R5G6B5, PF_A8R8G8B8, ...) describe a host-order integer; their byte
// order in memory therefore depends on the machine. Use the PF_BYTE_*
// aliases when a fixed byte order is needed.
const (
	// PF_UNKNOWN is the zero value: no format, zero size.
	PF_UNKNOWN PixelFormat = 0
	// PF_L8 is 8-bit luminance.
	PF_L8 PixelFormat = 1
	// PF_L16 is 16-bit luminance.
	PF_L16 PixelFormat = 2
	// PF_A8 is 8-bit alpha.
	PF_A8 PixelFormat = 3
	// PF_A4L4 is 4 bits alpha, 4 bits luminance.
	PF_A4L4 PixelFormat = 4
	// PF_BYTE_LA is one byte luminance followed by one byte alpha.
	PF_BYTE_LA PixelFormat = 5
	// PF_R5G6B5 is 16-bit with 5 bits red, 6 bits green, 5 bits blue.
	PF_R5G6B5 PixelFormat = 6
	// PF_B5G6R5 is 16-bit with 5 bits blue, 6 bits green, 5 bits red.
	PF_B5G6R5 PixelFormat = 7
	// PF_A4R4G4B4 is 16-bit with 4 bits for alpha, red, green and blue.
	PF_A4R4G4B4 PixelFormat = 8
	// PF_A1R5G5B5 is 16-bit with 1 bit alpha and 5 bits per colour.
	PF_A1R5G5B5 PixelFormat = 9
	// PF_R8G8B8 is 24-bit with 8 bits for red, green and blue.
	PF_R8G8B8 PixelFormat = 10
	// PF_B8G8R8 is 24-bit with 8 bits for blue, green and red.
	PF_B8G8R8 PixelFormat = 11
	// PF_A8R8G8B8 is 32-bit with 8 bits for alpha, red, green and blue.
	PF_A8R8G8B8 PixelFormat = 12
	// PF_A8B8G8R8 is 32-bit with 8 bits for alpha, blue, green and red.
	PF_A8B8G8R8 PixelFormat = 13
	// PF_B8G8R8A8 is 32-bit with 8 bits for blue, green, red and alpha.
	PF_B8G8R8A8 PixelFormat = 14
	// PF_A2R10G10B10 is 32-bit with 2 bits alpha and 10 bits per colour.
	PF_A2R10G10B10 PixelFormat = 15
	// PF_A2B10G10R10 is 32-bit with 2 bits alpha and 10 bits per colour,
	// blue first.
	PF_A2B10G10R10 PixelFormat = 16
	// PF_DXT1 is DirectDraw Surface DXT1 (BC1) block compression.
	PF_DXT1 PixelFormat = 17
	// PF_DXT2 is DXT2 (premultiplied BC2) block compression.
	PF_DXT2 PixelFormat = 18
	// PF_DXT3 is DXT3 (BC2) block compression.
	PF_DXT3 PixelFormat = 19
	// PF_DXT4 is DXT4 (premultiplied BC3) block compression.
	PF_DXT4 PixelFormat = 20
	// PF_DXT5 is DXT5 (BC3) block compression.
	PF_DXT5 PixelFormat = 21
	// PF_FLOAT16_RGB is three 16-bit floats.
	PF_FLOAT16_RGB PixelFormat = 22
	// PF_FLOAT16_RGBA is four 16-bit floats.
	PF_FLOAT16_RGBA PixelFormat = 23
	// PF_FLOAT32_RGB is three 32-bit floats.
	PF_FLOAT32_RGB PixelFormat = 24
	// PF_FLOAT32_RGBA is four 32-bit floats.
	PF_FLOAT32_RGBA PixelFormat = 25
	// PF_X8R8G8B8 is PF_A8R8G8B8 with the alpha byte ignored.
	PF_X8R8G8B8 PixelFormat = 26
	// PF_X8B8G8R8 is PF_A8B8G8R8 with the alpha byte ignored.
	PF_X8B8G8R8 PixelFormat = 27
	// PF_R8G8B8A8 is 32-bit with 8 bits for red, green, blue and alpha.
	PF_R8G8B8A8 PixelFormat = 28
	// PF_DEPTH is a depth texture format.
	PF_DEPTH PixelFormat = 29
	// PF_SHORT_RGBA is four 16-bit normalised channels.
	PF_SHORT_RGBA PixelFormat = 30
	// PF_R3G3B2 is 8-bit with 3 bits red, 3 bits green, 2 bits blue.
	PF_R3G3B2 PixelFormat = 31
	// PF_FLOAT16_R is one 16-bit float.
	PF_FLOAT16_R PixelFormat = 32
	// PF_FLOAT32_R is one 32-bit float.
	PF_FLOAT32_R PixelFormat = 33
	// PF_SHORT_GR is two 16-bit normalised channels, green high.
	PF_SHORT_GR PixelFormat = 34
	// PF_FLOAT16_GR is two 16-bit floats, red then green.
	PF_FLOAT16_GR PixelFormat = 35
	// PF_FLOAT32_GR is two 32-bit floats, red then green.
	PF_FLOAT32_GR PixelFormat = 36
	// PF_SHORT_RGB is three 16-bit normalised channels.
	PF_SHORT_RGB PixelFormat = 37
	// PF_PVRTC_RGB2 is PowerVR RGB at 2 bits per pixel.
	PF_PVRTC_RGB2 PixelFormat = 38
	// PF_PVRTC_RGBA2 is PowerVR RGBA at 2 bits per pixel.
	PF_PVRTC_RGBA2 PixelFormat = 39
	// PF_PVRTC_RGB4 is PowerVR RGB at 4 bits per pixel.
	PF_PVRTC_RGB4 PixelFormat = 40
	// PF_PVRTC_RGBA4 is PowerVR RGBA at 4 bits per pixel.
	PF_PVRTC_RGBA4 PixelFormat = 41
	// PF_PVRTC2_2BPP is PowerVR version 2 at 2 bits per pixel.
	PF_PVRTC2_2BPP PixelFormat = 42
	// PF_PVRTC2_4BPP is PowerVR version 2 at 4 bits per pixel.
	PF_PVRTC2_4BPP PixelFormat = 43
	// PF_R11G11B10_FLOAT is 32-bit packed unsigned floats: 11 bits red,
	// 11 bits green, 10 bits blue.
	PF_R11G11B10_FLOAT PixelFormat = 44

	PF_R8_UINT           PixelFormat = 45
	PF_R8G8_UINT         PixelFormat = 46
	PF_R8G8B8_UINT       PixelFormat = 47
	PF_R8G8B8A8_UINT     PixelFormat = 48
	PF_R16_UINT          PixelFormat = 49
	PF_R16G16_UINT       PixelFormat = 50
	PF_R16G16B16_UINT    PixelFormat = 51
	PF_R16G16B16A16_UINT PixelFormat = 52
	PF_R32_UINT          PixelFormat = 53
	PF_R32G32_UINT       PixelFormat = 54
	PF_R32G32B32_UINT    PixelFormat = 55
	PF_R32G32B32A32_UINT PixelFormat = 56
	PF_R8_SINT           PixelFormat = 57
	PF_R8G8_SINT         PixelFormat = 58
	PF_R8G8B8_SINT       PixelFormat = 59
	PF_R8G8B8A8_SINT     PixelFormat = 60
	PF_R16_SINT          PixelFormat = 61
	PF_R16G16_SINT       PixelFormat = 62
	PF_R16G16B16_SINT    PixelFormat = 63
	PF_R16G16B16A16_SINT PixelFormat = 64
	PF_R32_SINT          PixelFormat = 65
	PF_R32G32_SINT       PixelFormat = 66
	PF_R32G32B32_SINT    PixelFormat = 67
	PF_R32G32B32A32_SINT PixelFormat = 68

	// PF_R9G9B9E5_SHAREDEXP is three 9-bit mantissas with a shared 5-bit
	// exponent.
	PF_R9G9B9E5_SHAREDEXP PixelFormat = 69
	// PF_BC4_UNORM is BC4 block compression, unsigned normalised.
	PF_BC4_UNORM PixelFormat = 70
	// PF_BC4_SNORM is BC4 block compression, signed normalised.
	PF_BC4_SNORM PixelFormat = 71
	// PF_BC5_UNORM is BC5 block compression, unsigned normalised.
	PF_BC5_UNORM PixelFormat = 72
	// PF_BC5_SNORM is BC5 block compression, signed normalised.
	PF_BC5_SNORM PixelFormat = 73
	// PF_BC6H_UF16 is BC6H block compression, unsigned half floats.
	PF_BC6H_UF16 PixelFormat = 74
	// PF_BC6H_SF16 is BC6H block compression, signed half floats.
	PF_BC6H_SF16 PixelFormat = 75
	// PF_BC7_UNORM is BC7 block compression.
	PF_BC7_UNORM PixelFormat = 76
	// PF_BC7_UNORM_SRGB is BC7 block compression in sRGB.
	PF_BC7_UNORM_SRGB PixelFormat = 77
	// PF_R8 is 8-bit red.
	PF_R8 PixelFormat = 78
	// PF_RG8 is 16-bit with 8 bits red (high) and 8 bits green.
	PF_RG8 PixelFormat = 79

	PF_R8_SNORM           PixelFormat = 80
	PF_R8G8_SNORM         PixelFormat = 81
	PF_R8G8B8_SNORM       PixelFormat = 82
	PF_R8G8B8A8_SNORM     PixelFormat = 83
	PF_R16_SNORM          PixelFormat = 84
	PF_R16G16_SNORM       PixelFormat = 85
	PF_R16G16B16_SNORM    PixelFormat = 86
	PF_R16G16B16A16_SNORM PixelFormat = 87

	// PF_ETC1_RGB8 is Ericsson Texture Compression version 1.
	PF_ETC1_RGB8 PixelFormat = 88

	// PF_COUNT is the number of pixel formats.
	PF_COUNT PixelFormat = 89
)

// Aliases with a fixed byte order in memory. PF_BYTE_L, PF_SHORT_L and
// PF_BYTE_A are the same on every host.
const (
	PF_BYTE_L  = PF_L8
	PF_SHORT_L = PF_L16
	PF_BYTE_A  = PF_A8
)

// Byte-order aliases resolved from the host byte order at package init:
// PF_BYTE_RGB is always bytes R,G,B in memory, PF_BYTE_RGBA always R,G,B,A,
// and so on.
var (
	PF_BYTE_RGB  PixelFormat
	PF_BYTE_BGR  PixelFormat
	PF_BYTE_BGRA PixelFormat
	PF_BYTE_RGBA PixelFormat
)

// byteAliases returns the PF_BYTE_RGB, PF_BYTE_BGR, PF_BYTE_BGRA and
// PF_BYTE_RGBA targets for the given byte order.
func byteAliases(bigEndian bool) (rgb, bgr, bgra, rgba PixelFormat) {
	if bigEndian {
		return PF_R8G8B8, PF_B8G8R8, PF_B8G8R8A8, PF_R8G8B8A8
	}
	return PF_B8G8R8, PF_R8G8B8, PF_A8R8G8B8, PF_A8B8G8R8
}

// Flags are on/off properties of a pixel format.
type Flags uint32

const (
	// FlagHasAlpha marks formats with an alpha channel.
	FlagHasAlpha Flags = 0x00000001
	// FlagCompressed marks block-compressed formats. Element sizes and bit
	// counts of such formats carry no meaning.
	FlagCompressed Flags = 0x00000002
	// FlagFloat marks floating point formats.
	FlagFloat Flags = 0x00000004
	// FlagDepth marks depth formats.
	FlagDepth Flags = 0x00000008
	// FlagNativeEndian marks formats stored as one host-order integer, so
	// masks and shifts apply.
	FlagNativeEndian Flags = 0x00000010
	// FlagLuminance marks formats where one luminance value replaces R, G
	// and B (but not A).
	FlagLuminance Flags = 0x00000020
	// FlagInteger marks non-normalised integer formats.
	FlagInteger Flags = 0x00000040
)

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

var flagNames = [...]string{"HASALPHA", "COMPRESSED", "FLOAT", "DEPTH", "NATIVEENDIAN", "LUMINANCE", "INTEGER"}

// String lists the set flags joined by "|", or "0" when none are set.
func (f Flags) String() string {
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// ComponentType is the scalar type of one channel.
type ComponentType uint8

const (
	// ComponentByte is an 8-bit (or narrower) fixed-point channel.
	ComponentByte ComponentType = iota
	// ComponentShort is a 16-bit fixed-point channel.
	ComponentShort
	// ComponentFloat16 is a half float channel.
	ComponentFloat16
	// ComponentFloat32 is a 32-bit float channel.
	ComponentFloat32
	// ComponentSInt is a signed integer channel.
	ComponentSInt
	// ComponentUInt is an unsigned integer channel.
	ComponentUInt

	componentTypeCount
)

// String returns a string representation of the component type.
func (t ComponentType) String() string {
	switch t {
	case ComponentByte:
		return "Byte"
	case ComponentShort:
		return "Short"
	case ComponentFloat16:
		return "Float16"
	case ComponentFloat32:
		return "Float32"
	case ComponentSInt:
		return "SInt"
	case ComponentUInt:
		return "UInt"
	default:
		return "Unknown"
	}
}

// String returns the canonical name of the format.
func (f PixelFormat) String() string {
	if f >= PF_COUNT {
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
	return FormatName(f)
}

// IsValid reports whether f names a defined format.
func (f PixelFormat) IsValid() bool {
	return f < PF_COUNT
}
