package pixfmt

import "github.com/gogpu/pixfmt/internal/color"

// FormatDescriptor describes the memory layout and channel semantics of one
// pixel format. Descriptors are built once and never mutated; Descriptor
// returns copies.
type FormatDescriptor struct {
	// Name is the canonical PF_* identifier.
	Name string

	// ElemBytes is the size of one pixel in bytes. It is 0 for unknown and
	// compressed formats.
	ElemBytes int

	// Flags holds the format properties.
	Flags Flags

	// ComponentType is the scalar type of each channel.
	ComponentType ComponentType

	// ComponentCount is the number of stored channels. Compressed formats
	// report 3 without alpha and 4 with.
	ComponentCount int

	// BitCounts holds the R, G, B and A channel widths.
	BitCounts [4]int

	// Masks and Shifts locate the R, G, B and A channels inside the
	// host-order integer of a native-endian format. They are zero for other
	// formats.
	Masks  [4]uint32
	Shifts [4]int

	snorm bool
	block blockInfo
}

// blockInfo is the compression block of a compressed format.
type blockInfo struct {
	width, height, bytes int
}

// ElemBits returns the size of one pixel in bits.
func (d FormatDescriptor) ElemBits() int {
	return d.ElemBytes * 8
}

// channelBytes returns the storage size of one channel of a format whose
// channels are whole, equally sized memory elements.
func (d FormatDescriptor) channelBytes() int {
	if d.ComponentCount == 0 {
		return 0
	}
	return d.ElemBytes / d.ComponentCount
}

// Shorthand used by the table.
const (
	fA  = FlagHasAlpha
	fC  = FlagCompressed
	fF  = FlagFloat
	fD  = FlagDepth
	fN  = FlagNativeEndian
	fL  = FlagLuminance
	fI  = FlagInteger
	tB  = ComponentByte
	tS  = ComponentShort
	tH  = ComponentFloat16
	tF  = ComponentFloat32
	tSI = ComponentSInt
	tUI = ComponentUInt
)

var (
	dxtSmall = blockInfo{4, 4, 8}
	dxtLarge = blockInfo{4, 4, 16}
	pvrtc2   = blockInfo{8, 4, 8}
	pvrtc4   = blockInfo{4, 4, 8}
)

// descriptors is indexed by PixelFormat.
var descriptors = [PF_COUNT]FormatDescriptor{
	PF_UNKNOWN: {Name: "PF_UNKNOWN"},
	PF_L8: {
		Name: "PF_L8", ElemBytes: 1, Flags: fL | fN, ComponentType: tB, ComponentCount: 1,
		BitCounts: [4]int{8, 0, 0, 0}, Masks: [4]uint32{0xFF, 0, 0, 0},
	},
	PF_L16: {
		Name: "PF_L16", ElemBytes: 2, Flags: fL | fN, ComponentType: tS, ComponentCount: 1,
		BitCounts: [4]int{16, 0, 0, 0}, Masks: [4]uint32{0xFFFF, 0, 0, 0},
	},
	PF_A8: {
		Name: "PF_A8", ElemBytes: 1, Flags: fA | fN, ComponentType: tB, ComponentCount: 1,
		BitCounts: [4]int{0, 0, 0, 8}, Masks: [4]uint32{0, 0, 0, 0xFF},
	},
	PF_A4L4: {
		Name: "PF_A4L4", ElemBytes: 1, Flags: fA | fL | fN, ComponentType: tB, ComponentCount: 2,
		BitCounts: [4]int{4, 0, 0, 4}, Masks: [4]uint32{0x0F, 0, 0, 0xF0}, Shifts: [4]int{0, 0, 0, 4},
	},
	PF_BYTE_LA: {
		Name: "PF_BYTE_LA", ElemBytes: 2, Flags: fA | fL, ComponentType: tB, ComponentCount: 2,
		BitCounts: [4]int{8, 0, 0, 8},
	},
	PF_R5G6B5: {
		Name: "PF_R5G6B5", ElemBytes: 2, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{5, 6, 5, 0}, Masks: [4]uint32{0xF800, 0x07E0, 0x001F, 0}, Shifts: [4]int{11, 5, 0, 0},
	},
	PF_B5G6R5: {
		Name: "PF_B5G6R5", ElemBytes: 2, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{5, 6, 5, 0}, Masks: [4]uint32{0x001F, 0x07E0, 0xF800, 0}, Shifts: [4]int{0, 5, 11, 0},
	},
	PF_A4R4G4B4: {
		Name: "PF_A4R4G4B4", ElemBytes: 2, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{4, 4, 4, 4}, Masks: [4]uint32{0x0F00, 0x00F0, 0x000F, 0xF000}, Shifts: [4]int{8, 4, 0, 12},
	},
	PF_A1R5G5B5: {
		Name: "PF_A1R5G5B5", ElemBytes: 2, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{5, 5, 5, 1}, Masks: [4]uint32{0x7C00, 0x03E0, 0x001F, 0x8000}, Shifts: [4]int{10, 5, 0, 15},
	},
	PF_R8G8B8: {
		Name: "PF_R8G8B8", ElemBytes: 3, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{8, 8, 8, 0}, Masks: [4]uint32{0xFF0000, 0x00FF00, 0x0000FF, 0}, Shifts: [4]int{16, 8, 0, 0},
	},
	PF_B8G8R8: {
		Name: "PF_B8G8R8", ElemBytes: 3, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{8, 8, 8, 0}, Masks: [4]uint32{0x0000FF, 0x00FF00, 0xFF0000, 0}, Shifts: [4]int{0, 8, 16, 0},
	},
	PF_A8R8G8B8: {
		Name: "PF_A8R8G8B8", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{8, 8, 8, 8}, Masks: [4]uint32{0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000}, Shifts: [4]int{16, 8, 0, 24},
	},
	PF_A8B8G8R8: {
		Name: "PF_A8B8G8R8", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{8, 8, 8, 8}, Masks: [4]uint32{0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000}, Shifts: [4]int{0, 8, 16, 24},
	},
	PF_B8G8R8A8: {
		Name: "PF_B8G8R8A8", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{8, 8, 8, 8}, Masks: [4]uint32{0x0000FF00, 0x00FF0000, 0xFF000000, 0x000000FF}, Shifts: [4]int{8, 16, 24, 0},
	},
	PF_A2R10G10B10: {
		Name: "PF_A2R10G10B10", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{10, 10, 10, 2}, Masks: [4]uint32{0x3FF00000, 0x000FFC00, 0x000003FF, 0xC0000000}, Shifts: [4]int{20, 10, 0, 30},
	},
	PF_A2B10G10R10: {
		Name: "PF_A2B10G10R10", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{10, 10, 10, 2}, Masks: [4]uint32{0x000003FF, 0x000FFC00, 0x3FF00000, 0xC0000000}, Shifts: [4]int{0, 10, 20, 30},
	},
	PF_DXT1: {Name: "PF_DXT1", Flags: fC | fA, ComponentType: tB, ComponentCount: 3, block: dxtSmall},
	PF_DXT2: {Name: "PF_DXT2", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_DXT3: {Name: "PF_DXT3", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_DXT4: {Name: "PF_DXT4", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_DXT5: {Name: "PF_DXT5", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_FLOAT16_RGB: {
		Name: "PF_FLOAT16_RGB", ElemBytes: 6, Flags: fF, ComponentType: tH, ComponentCount: 3,
		BitCounts: [4]int{16, 16, 16, 0},
	},
	PF_FLOAT16_RGBA: {
		Name: "PF_FLOAT16_RGBA", ElemBytes: 8, Flags: fF | fA, ComponentType: tH, ComponentCount: 4,
		BitCounts: [4]int{16, 16, 16, 16},
	},
	PF_FLOAT32_RGB: {
		Name: "PF_FLOAT32_RGB", ElemBytes: 12, Flags: fF, ComponentType: tF, ComponentCount: 3,
		BitCounts: [4]int{32, 32, 32, 0},
	},
	PF_FLOAT32_RGBA: {
		Name: "PF_FLOAT32_RGBA", ElemBytes: 16, Flags: fF | fA, ComponentType: tF, ComponentCount: 4,
		BitCounts: [4]int{32, 32, 32, 32},
	},
	PF_X8R8G8B8: {
		Name: "PF_X8R8G8B8", ElemBytes: 4, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{8, 8, 8, 0}, Masks: [4]uint32{0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000}, Shifts: [4]int{16, 8, 0, 24},
	},
	PF_X8B8G8R8: {
		Name: "PF_X8B8G8R8", ElemBytes: 4, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{8, 8, 8, 0}, Masks: [4]uint32{0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000}, Shifts: [4]int{0, 8, 16, 24},
	},
	PF_R8G8B8A8: {
		Name: "PF_R8G8B8A8", ElemBytes: 4, Flags: fA | fN, ComponentType: tB, ComponentCount: 4,
		BitCounts: [4]int{8, 8, 8, 8}, Masks: [4]uint32{0xFF000000, 0x00FF0000, 0x0000FF00, 0x000000FF}, Shifts: [4]int{24, 16, 8, 0},
	},
	PF_DEPTH: {Name: "PF_DEPTH", ElemBytes: 4, Flags: fD, ComponentType: tF, ComponentCount: 1},
	PF_SHORT_RGBA: {
		Name: "PF_SHORT_RGBA", ElemBytes: 8, Flags: fA, ComponentType: tS, ComponentCount: 4,
		BitCounts: [4]int{16, 16, 16, 16},
	},
	PF_R3G3B2: {
		Name: "PF_R3G3B2", ElemBytes: 1, Flags: fN, ComponentType: tB, ComponentCount: 3,
		BitCounts: [4]int{3, 3, 2, 0}, Masks: [4]uint32{0xE0, 0x1C, 0x03, 0}, Shifts: [4]int{5, 2, 0, 0},
	},
	PF_FLOAT16_R: {
		Name: "PF_FLOAT16_R", ElemBytes: 2, Flags: fF, ComponentType: tH, ComponentCount: 1,
		BitCounts: [4]int{16, 0, 0, 0},
	},
	PF_FLOAT32_R: {
		Name: "PF_FLOAT32_R", ElemBytes: 4, Flags: fF, ComponentType: tF, ComponentCount: 1,
		BitCounts: [4]int{32, 0, 0, 0},
	},
	PF_SHORT_GR: {
		Name: "PF_SHORT_GR", ElemBytes: 4, Flags: fN, ComponentType: tS, ComponentCount: 2,
		BitCounts: [4]int{16, 16, 0, 0}, Masks: [4]uint32{0x0000FFFF, 0xFFFF0000, 0, 0}, Shifts: [4]int{0, 16, 0, 0},
	},
	PF_FLOAT16_GR: {
		Name: "PF_FLOAT16_GR", ElemBytes: 4, Flags: fF, ComponentType: tH, ComponentCount: 2,
		BitCounts: [4]int{16, 16, 0, 0},
	},
	PF_FLOAT32_GR: {
		Name: "PF_FLOAT32_GR", ElemBytes: 8, Flags: fF, ComponentType: tF, ComponentCount: 2,
		BitCounts: [4]int{32, 32, 0, 0},
	},
	PF_SHORT_RGB: {
		Name: "PF_SHORT_RGB", ElemBytes: 6, ComponentType: tS, ComponentCount: 3,
		BitCounts: [4]int{16, 16, 16, 0},
	},
	PF_PVRTC_RGB2:  {Name: "PF_PVRTC_RGB2", Flags: fC, ComponentType: tB, ComponentCount: 3, block: pvrtc2},
	PF_PVRTC_RGBA2: {Name: "PF_PVRTC_RGBA2", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: pvrtc2},
	PF_PVRTC_RGB4:  {Name: "PF_PVRTC_RGB4", Flags: fC, ComponentType: tB, ComponentCount: 3, block: pvrtc4},
	PF_PVRTC_RGBA4: {Name: "PF_PVRTC_RGBA4", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: pvrtc4},
	PF_PVRTC2_2BPP: {Name: "PF_PVRTC2_2BPP", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: pvrtc2},
	PF_PVRTC2_4BPP: {Name: "PF_PVRTC2_4BPP", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: pvrtc4},
	PF_R11G11B10_FLOAT: {
		Name: "PF_R11G11B10_FLOAT", ElemBytes: 4, Flags: fF | fN, ComponentType: tF, ComponentCount: 3,
		BitCounts: [4]int{11, 11, 10, 0}, Masks: [4]uint32{0x000007FF, 0x003FF800, 0xFFC00000, 0}, Shifts: [4]int{0, 11, 22, 0},
	},

	PF_R8_UINT:           intFormat("PF_R8_UINT", tUI, 1, 1),
	PF_R8G8_UINT:         intFormat("PF_R8G8_UINT", tUI, 1, 2),
	PF_R8G8B8_UINT:       intFormat("PF_R8G8B8_UINT", tUI, 1, 3),
	PF_R8G8B8A8_UINT:     intFormat("PF_R8G8B8A8_UINT", tUI, 1, 4),
	PF_R16_UINT:          intFormat("PF_R16_UINT", tUI, 2, 1),
	PF_R16G16_UINT:       intFormat("PF_R16G16_UINT", tUI, 2, 2),
	PF_R16G16B16_UINT:    intFormat("PF_R16G16B16_UINT", tUI, 2, 3),
	PF_R16G16B16A16_UINT: intFormat("PF_R16G16B16A16_UINT", tUI, 2, 4),
	PF_R32_UINT:          intFormat("PF_R32_UINT", tUI, 4, 1),
	PF_R32G32_UINT:       intFormat("PF_R32G32_UINT", tUI, 4, 2),
	PF_R32G32B32_UINT:    intFormat("PF_R32G32B32_UINT", tUI, 4, 3),
	PF_R32G32B32A32_UINT: intFormat("PF_R32G32B32A32_UINT", tUI, 4, 4),
	PF_R8_SINT:           intFormat("PF_R8_SINT", tSI, 1, 1),
	PF_R8G8_SINT:         intFormat("PF_R8G8_SINT", tSI, 1, 2),
	PF_R8G8B8_SINT:       intFormat("PF_R8G8B8_SINT", tSI, 1, 3),
	PF_R8G8B8A8_SINT:     intFormat("PF_R8G8B8A8_SINT", tSI, 1, 4),
	PF_R16_SINT:          intFormat("PF_R16_SINT", tSI, 2, 1),
	PF_R16G16_SINT:       intFormat("PF_R16G16_SINT", tSI, 2, 2),
	PF_R16G16B16_SINT:    intFormat("PF_R16G16B16_SINT", tSI, 2, 3),
	PF_R16G16B16A16_SINT: intFormat("PF_R16G16B16A16_SINT", tSI, 2, 4),
	PF_R32_SINT:          intFormat("PF_R32_SINT", tSI, 4, 1),
	PF_R32G32_SINT:       intFormat("PF_R32G32_SINT", tSI, 4, 2),
	PF_R32G32B32_SINT:    intFormat("PF_R32G32B32_SINT", tSI, 4, 3),
	PF_R32G32B32A32_SINT: intFormat("PF_R32G32B32A32_SINT", tSI, 4, 4),

	PF_R9G9B9E5_SHAREDEXP: {
		Name: "PF_R9G9B9E5_SHAREDEXP", ElemBytes: 4, Flags: fF, ComponentType: tF, ComponentCount: 3,
		BitCounts: [4]int{9, 9, 9, 0}, Masks: [4]uint32{0x000001FF, 0x0003FE00, 0x07FC0000, 0}, Shifts: [4]int{0, 9, 18, 0},
	},
	PF_BC4_UNORM:      {Name: "PF_BC4_UNORM", Flags: fC, ComponentType: tB, ComponentCount: 1, block: dxtSmall},
	PF_BC4_SNORM:      {Name: "PF_BC4_SNORM", Flags: fC, ComponentType: tB, ComponentCount: 1, block: dxtSmall, snorm: true},
	PF_BC5_UNORM:      {Name: "PF_BC5_UNORM", Flags: fC, ComponentType: tB, ComponentCount: 2, block: dxtLarge},
	PF_BC5_SNORM:      {Name: "PF_BC5_SNORM", Flags: fC, ComponentType: tB, ComponentCount: 2, block: dxtLarge, snorm: true},
	PF_BC6H_UF16:      {Name: "PF_BC6H_UF16", Flags: fC | fF, ComponentType: tH, ComponentCount: 3, block: dxtLarge},
	PF_BC6H_SF16:      {Name: "PF_BC6H_SF16", Flags: fC | fF, ComponentType: tH, ComponentCount: 3, block: dxtLarge},
	PF_BC7_UNORM:      {Name: "PF_BC7_UNORM", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_BC7_UNORM_SRGB: {Name: "PF_BC7_UNORM_SRGB", Flags: fC | fA, ComponentType: tB, ComponentCount: 4, block: dxtLarge},
	PF_R8: {
		Name: "PF_R8", ElemBytes: 1, Flags: fN, ComponentType: tB, ComponentCount: 1,
		BitCounts: [4]int{8, 0, 0, 0}, Masks: [4]uint32{0xFF, 0, 0, 0},
	},
	PF_RG8: {
		Name: "PF_RG8", ElemBytes: 2, Flags: fN, ComponentType: tB, ComponentCount: 2,
		BitCounts: [4]int{8, 8, 0, 0}, Masks: [4]uint32{0xFF00, 0x00FF, 0, 0}, Shifts: [4]int{8, 0, 0, 0},
	},

	PF_R8_SNORM:           snormFormat("PF_R8_SNORM", tB, 1),
	PF_R8G8_SNORM:         snormFormat("PF_R8G8_SNORM", tB, 2),
	PF_R8G8B8_SNORM:       snormFormat("PF_R8G8B8_SNORM", tB, 3),
	PF_R8G8B8A8_SNORM:     snormFormat("PF_R8G8B8A8_SNORM", tB, 4),
	PF_R16_SNORM:          snormFormat("PF_R16_SNORM", tS, 1),
	PF_R16G16_SNORM:       snormFormat("PF_R16G16_SNORM", tS, 2),
	PF_R16G16B16_SNORM:    snormFormat("PF_R16G16B16_SNORM", tS, 3),
	PF_R16G16B16A16_SNORM: snormFormat("PF_R16G16B16A16_SNORM", tS, 4),

	PF_ETC1_RGB8: {Name: "PF_ETC1_RGB8", Flags: fC, ComponentType: tB, ComponentCount: 3, block: dxtSmall},
}

// intFormat describes a non-normalised integer format with count channels of
// size bytes each, stored R, G, B, A in memory.
func intFormat(name string, t ComponentType, size, count int) FormatDescriptor {
	return arrayFormat(name, fI, t, size, count, false)
}

// snormFormat describes a signed normalised format with count channels.
func snormFormat(name string, t ComponentType, count int) FormatDescriptor {
	size := 1
	if t == tS {
		size = 2
	}
	return arrayFormat(name, 0, t, size, count, true)
}

func arrayFormat(name string, flags Flags, t ComponentType, size, count int, snorm bool) FormatDescriptor {
	d := FormatDescriptor{
		Name:           name,
		ElemBytes:      size * count,
		Flags:          flags,
		ComponentType:  t,
		ComponentCount: count,
		snorm:          snorm,
	}
	if count == 4 {
		d.Flags |= fA
	}
	for i := 0; i < count; i++ {
		d.BitCounts[i] = size * 8
	}
	return d
}

func init() {
	PF_BYTE_RGB, PF_BYTE_BGR, PF_BYTE_BGRA, PF_BYTE_RGBA = byteAliases(color.HostBigEndian)
}

// descriptorOf returns a pointer into the table; unknown codes map to the
// PF_UNKNOWN entry.
func descriptorOf(f PixelFormat) *FormatDescriptor {
	if f >= PF_COUNT {
		return &descriptors[PF_UNKNOWN]
	}
	return &descriptors[f]
}

// Descriptor returns a copy of the descriptor of f. Undefined codes yield the
// PF_UNKNOWN descriptor.
func Descriptor(f PixelFormat) FormatDescriptor {
	return *descriptorOf(f)
}

// NumElemBytes returns the size of one pixel of f in bytes, or 0 for unknown
// and compressed formats.
func NumElemBytes(f PixelFormat) int {
	return descriptorOf(f).ElemBytes
}

// NumElemBits returns the size of one pixel of f in bits.
func NumElemBits(f PixelFormat) int {
	return descriptorOf(f).ElemBits()
}

// FormatFlags returns the property flags of f.
func FormatFlags(f PixelFormat) Flags {
	return descriptorOf(f).Flags
}

// HasAlpha reports whether f has an alpha channel.
func HasAlpha(f PixelFormat) bool { return FormatFlags(f).Has(FlagHasAlpha) }

// IsFloatingPoint reports whether f stores floating point values.
func IsFloatingPoint(f PixelFormat) bool { return FormatFlags(f).Has(FlagFloat) }

// IsInteger reports whether f stores non-normalised integers.
func IsInteger(f PixelFormat) bool { return FormatFlags(f).Has(FlagInteger) }

// IsCompressed reports whether f is block compressed.
func IsCompressed(f PixelFormat) bool { return FormatFlags(f).Has(FlagCompressed) }

// IsDepth reports whether f is a depth format.
func IsDepth(f PixelFormat) bool { return FormatFlags(f).Has(FlagDepth) }

// IsNativeEndian reports whether f is stored as one host-order integer.
func IsNativeEndian(f PixelFormat) bool { return FormatFlags(f).Has(FlagNativeEndian) }

// IsLuminance reports whether f is a luminance format.
func IsLuminance(f PixelFormat) bool { return FormatFlags(f).Has(FlagLuminance) }

// IsAccessible reports whether pixels of f can be read and written one at a
// time: the format is known, uncompressed and not a depth format.
func IsAccessible(f PixelFormat) bool {
	if f == PF_UNKNOWN || f >= PF_COUNT {
		return false
	}
	return FormatFlags(f)&(FlagCompressed|FlagDepth) == 0
}

// IsSnorm reports whether f stores signed normalised channels, which map
// to [-1, 1].
func IsSnorm(f PixelFormat) bool {
	return descriptorOf(f).snorm
}

// BitDepths returns the R, G, B and A channel widths of f. Compressed and
// depth formats report zeros.
func BitDepths(f PixelFormat) [4]int {
	return descriptorOf(f).BitCounts
}

// BitMasks returns the R, G, B and A masks of f. The masks only describe the
// layout of native-endian formats; other formats return zeros or masks that
// no codec path uses.
func BitMasks(f PixelFormat) [4]uint32 {
	return descriptorOf(f).Masks
}

// BitShifts returns the R, G, B and A shifts of f, with the same caveat as
// BitMasks.
func BitShifts(f PixelFormat) [4]int {
	return descriptorOf(f).Shifts
}

// ComponentTypeOf returns the channel type of f.
func ComponentTypeOf(f PixelFormat) ComponentType {
	return descriptorOf(f).ComponentType
}

// ComponentCountOf returns the number of channels of f.
func ComponentCountOf(f PixelFormat) int {
	return descriptorOf(f).ComponentCount
}

// Method forms of the registry queries.

// ElemBytes returns NumElemBytes(f).
func (f PixelFormat) ElemBytes() int { return NumElemBytes(f) }

// Flags returns FormatFlags(f).
func (f PixelFormat) Flags() Flags { return FormatFlags(f) }

// HasAlpha returns HasAlpha(f).
func (f PixelFormat) HasAlpha() bool { return HasAlpha(f) }

// IsFloatingPoint returns IsFloatingPoint(f).
func (f PixelFormat) IsFloatingPoint() bool { return IsFloatingPoint(f) }

// IsInteger returns IsInteger(f).
func (f PixelFormat) IsInteger() bool { return IsInteger(f) }

// IsCompressed returns IsCompressed(f).
func (f PixelFormat) IsCompressed() bool { return IsCompressed(f) }

// IsDepth returns IsDepth(f).
func (f PixelFormat) IsDepth() bool { return IsDepth(f) }

// IsNativeEndian returns IsNativeEndian(f).
func (f PixelFormat) IsNativeEndian() bool { return IsNativeEndian(f) }

// IsLuminance returns IsLuminance(f).
func (f PixelFormat) IsLuminance() bool { return IsLuminance(f) }

// IsAccessible returns IsAccessible(f).
func (f PixelFormat) IsAccessible() bool { return IsAccessible(f) }
