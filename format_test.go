package pixfmt

import (
	"strings"
	"testing"

	"github.com/gogpu/pixfmt/internal/color"
)

func TestDescriptorTable(t *testing.T) {
	seen := make(map[string]PixelFormat)
	for _, f := range Formats(false) {
		d := Descriptor(f)
		if d.Name == "" {
			t.Errorf("format %d has no name", f)
			continue
		}
		if prev, dup := seen[d.Name]; dup {
			t.Errorf("name %s used by %d and %d", d.Name, prev, f)
		}
		seen[d.Name] = f

		if got, want := NumElemBits(f), NumElemBytes(f)*8; got != want {
			t.Errorf("NumElemBits(%v) = %d, want %d", f, got, want)
		}
		if IsCompressed(f) {
			if d.ElemBytes != 0 {
				t.Errorf("%v: compressed format with ElemBytes %d", f, d.ElemBytes)
			}
			if w, h, n := BlockSize(f); w == 0 || h == 0 || n == 0 {
				t.Errorf("%v: BlockSize() = %d, %d, %d", f, w, h, n)
			}
		}
		if IsAccessible(f) && d.ElemBytes == 0 {
			t.Errorf("%v: accessible format with ElemBytes 0", f)
		}
		if HasAlpha(f) != (d.ComponentCount == 4 || d.BitCounts[3] > 0 || f == PF_DXT1) {
			t.Errorf("%v: alpha flag inconsistent with channels", f)
		}
	}
	if len(seen) != int(PF_COUNT) {
		t.Errorf("got %d formats, want %d", len(seen), PF_COUNT)
	}
}

func TestNativeMasks(t *testing.T) {
	for _, f := range Formats(true) {
		if !IsNativeEndian(f) {
			continue
		}
		var union uint32
		masks, shifts, bits := BitMasks(f), BitShifts(f), BitDepths(f)
		for i := range masks {
			if bits[i] > 0 {
				want := (uint32(1)<<uint(bits[i]) - 1) << uint(shifts[i])
				if masks[i] != want {
					t.Errorf("%v channel %d: mask %#x, want %#x", f, i, masks[i], want)
				}
			}
			if union&masks[i] != 0 {
				t.Errorf("%v: channel %d mask %#x overlaps", f, i, masks[i])
			}
			union |= masks[i]
		}
		if limit := uint64(1)<<uint(NumElemBits(f)) - 1; uint64(union) > limit {
			t.Errorf("%v: masks %#x exceed %d bits", f, union, NumElemBits(f))
		}
	}
}

func TestFormatValues(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		want uint8
	}{
		{PF_UNKNOWN, 0},
		{PF_L8, 1},
		{PF_A8R8G8B8, 12},
		{PF_DXT1, 17},
		{PF_R8G8B8A8, 28},
		{PF_DEPTH, 29},
		{PF_R11G11B10_FLOAT, 44},
		{PF_R32G32B32A32_SINT, 68},
		{PF_R9G9B9E5_SHAREDEXP, 69},
		{PF_RG8, 79},
		{PF_ETC1_RGB8, 88},
		{PF_COUNT, 89},
	}
	for _, tt := range tests {
		if uint8(tt.f) != tt.want {
			t.Errorf("%v = %d, want %d", tt.f, uint8(tt.f), tt.want)
		}
	}
}

func TestFlags(t *testing.T) {
	tests := []struct {
		f     PixelFormat
		flags Flags
	}{
		{PF_UNKNOWN, 0},
		{PF_L8, FlagLuminance | FlagNativeEndian},
		{PF_BYTE_LA, FlagHasAlpha | FlagLuminance},
		{PF_A8R8G8B8, FlagHasAlpha | FlagNativeEndian},
		{PF_X8R8G8B8, FlagNativeEndian},
		{PF_DXT1, FlagCompressed | FlagHasAlpha},
		{PF_FLOAT32_RGBA, FlagFloat | FlagHasAlpha},
		{PF_DEPTH, FlagDepth},
		{PF_R8G8B8A8_UINT, FlagInteger | FlagHasAlpha},
		{PF_R16_SINT, FlagInteger},
		{PF_R11G11B10_FLOAT, FlagFloat | FlagNativeEndian},
		{PF_R8G8_SNORM, 0},
	}
	for _, tt := range tests {
		if got := FormatFlags(tt.f); got != tt.flags {
			t.Errorf("FormatFlags(%v) = %v, want %v", tt.f, got, tt.flags)
		}
	}

	if !PF_FLOAT16_R.IsFloatingPoint() || PF_L16.IsFloatingPoint() {
		t.Error("IsFloatingPoint method disagrees with flags")
	}
	if !PF_R32_UINT.IsInteger() || !PF_BC7_UNORM.IsCompressed() || !PF_DEPTH.IsDepth() {
		t.Error("flag methods disagree with flags")
	}

	if got := (FlagHasAlpha | FlagNativeEndian).String(); got != "HASALPHA|NATIVEENDIAN" {
		t.Errorf("Flags.String() = %q, want HASALPHA|NATIVEENDIAN", got)
	}
	if got := Flags(0).String(); got != "0" {
		t.Errorf("Flags(0).String() = %q, want 0", got)
	}
}

func TestIsAccessible(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		want bool
	}{
		{PF_UNKNOWN, false},
		{PF_L8, true},
		{PF_R8G8B8A8, true},
		{PF_DXT5, false},
		{PF_PVRTC_RGB2, false},
		{PF_DEPTH, false},
		{PF_FLOAT16_GR, true},
		{PF_R9G9B9E5_SHAREDEXP, true},
		{PF_COUNT, false},
		{PixelFormat(200), false},
	}
	for _, tt := range tests {
		if got := IsAccessible(tt.f); got != tt.want {
			t.Errorf("IsAccessible(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		f     PixelFormat
		typ   ComponentType
		count int
		bits  [4]int
	}{
		{PF_L8, ComponentByte, 1, [4]int{8, 0, 0, 0}},
		{PF_A4R4G4B4, ComponentByte, 4, [4]int{4, 4, 4, 4}},
		{PF_SHORT_RGB, ComponentShort, 3, [4]int{16, 16, 16, 0}},
		{PF_FLOAT16_GR, ComponentFloat16, 2, [4]int{16, 16, 0, 0}},
		{PF_FLOAT32_RGBA, ComponentFloat32, 4, [4]int{32, 32, 32, 32}},
		{PF_R16G16B16_SINT, ComponentSInt, 3, [4]int{16, 16, 16, 0}},
		{PF_R32G32_UINT, ComponentUInt, 2, [4]int{32, 32, 0, 0}},
		{PF_DXT1, ComponentByte, 3, [4]int{}},
		{PF_DXT5, ComponentByte, 4, [4]int{}},
	}
	for _, tt := range tests {
		if got := ComponentTypeOf(tt.f); got != tt.typ {
			t.Errorf("ComponentTypeOf(%v) = %v, want %v", tt.f, got, tt.typ)
		}
		if got := ComponentCountOf(tt.f); got != tt.count {
			t.Errorf("ComponentCountOf(%v) = %d, want %d", tt.f, got, tt.count)
		}
		if got := BitDepths(tt.f); got != tt.bits {
			t.Errorf("BitDepths(%v) = %v, want %v", tt.f, got, tt.bits)
		}
	}
}

func TestByteAliases(t *testing.T) {
	rgb, bgr, bgra, rgba := byteAliases(false)
	if rgb != PF_B8G8R8 || bgr != PF_R8G8B8 || bgra != PF_A8R8G8B8 || rgba != PF_A8B8G8R8 {
		t.Errorf("little-endian aliases = %v %v %v %v", rgb, bgr, bgra, rgba)
	}
	rgb, bgr, bgra, rgba = byteAliases(true)
	if rgb != PF_R8G8B8 || bgr != PF_B8G8R8 || bgra != PF_B8G8R8A8 || rgba != PF_R8G8B8A8 {
		t.Errorf("big-endian aliases = %v %v %v %v", rgb, bgr, bgra, rgba)
	}

	want, _, _, _ := byteAliases(color.HostBigEndian)
	if PF_BYTE_RGB != want {
		t.Errorf("PF_BYTE_RGB = %v, want %v", PF_BYTE_RGB, want)
	}
}

func TestFormatName(t *testing.T) {
	if got := FormatName(PF_A8R8G8B8); got != "PF_A8R8G8B8" {
		t.Errorf("FormatName(PF_A8R8G8B8) = %q", got)
	}
	if got := FormatName(PixelFormat(200)); got != "PF_UNKNOWN" {
		t.Errorf("FormatName(200) = %q, want PF_UNKNOWN", got)
	}
	if got := PixelFormat(200).String(); got != "PixelFormat(200)" {
		t.Errorf("String() = %q, want PixelFormat(200)", got)
	}
	if got := PF_ETC1_RGB8.String(); got != "PF_ETC1_RGB8" {
		t.Errorf("String() = %q, want PF_ETC1_RGB8", got)
	}
}

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		accessible    bool
		caseSensitive bool
		want          PixelFormat
	}{
		{"exact", "PF_A8R8G8B8", false, true, PF_A8R8G8B8},
		{"wrong case sensitive", "pf_a8r8g8b8", false, true, PF_UNKNOWN},
		{"case insensitive", "pf_a8r8g8b8", false, false, PF_A8R8G8B8},
		{"bogus", "bogus", false, false, PF_UNKNOWN},
		{"compressed", "PF_DXT1", false, true, PF_DXT1},
		{"compressed filtered", "PF_DXT1", true, true, PF_UNKNOWN},
		{"depth filtered", "PF_DEPTH", true, true, PF_UNKNOWN},
		{"unknown filtered", "PF_UNKNOWN", true, true, PF_UNKNOWN},
		{"unknown", "PF_UNKNOWN", false, true, PF_UNKNOWN},
		{"alias", "PF_BYTE_RGBA", true, true, PF_BYTE_RGBA},
		{"alias folded", "pf_byte_bgr", false, false, PF_BYTE_BGR},
		{"alias luminance", "PF_BYTE_L", false, true, PF_L8},
		{"alias short", "PF_SHORT_L", false, true, PF_L16},
		{"last", "PF_ETC1_RGB8", false, true, PF_ETC1_RGB8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromName(tt.input, tt.accessible, tt.caseSensitive); got != tt.want {
				t.Errorf("FormatFromName(%q, %v, %v) = %v, want %v",
					tt.input, tt.accessible, tt.caseSensitive, got, tt.want)
			}
		})
	}

	for _, f := range Formats(false) {
		if got := FormatFromName(FormatName(f), false, true); got != f {
			t.Errorf("FormatFromName(FormatName(%d)) = %v", f, got)
		}
	}
}

func TestBNFExpression(t *testing.T) {
	all := BNFExpression(false)
	names := strings.Split(all, " | ")
	if len(names) != int(PF_COUNT) {
		t.Fatalf("BNFExpression(false) has %d names, want %d", len(names), PF_COUNT)
	}
	for i := 1; i < len(names); i++ {
		if len(names[i]) > len(names[i-1]) {
			t.Errorf("%s after shorter %s", names[i], names[i-1])
		}
	}
	if !strings.HasPrefix(all, "'PF_R16G16B16A16_SNORM' | 'PF_R9G9B9E5_SHAREDEXP' | ") {
		t.Errorf("BNFExpression(false) starts %q", all[:60])
	}
	if !strings.HasSuffix(all, "'PF_R8' | 'PF_A8' | 'PF_L8'") {
		t.Errorf("BNFExpression(false) ends %q", all[len(all)-40:])
	}

	acc := BNFExpression(true)
	for _, excluded := range []string{"'PF_DXT1'", "'PF_DEPTH'", "'PF_UNKNOWN'", "'PF_BC7_UNORM'"} {
		if strings.Contains(acc, excluded) {
			t.Errorf("BNFExpression(true) contains %s", excluded)
		}
	}
	if got, want := len(strings.Split(acc, " | ")), len(Formats(true)); got != want {
		t.Errorf("BNFExpression(true) has %d names, want %d", got, want)
	}
}

func TestFormatForBitDepths(t *testing.T) {
	tests := []struct {
		f         PixelFormat
		intBits   int
		floatBits int
		want      PixelFormat
	}{
		{PF_R8G8B8, 16, 0, PF_R5G6B5},
		{PF_X8R8G8B8, 16, 0, PF_R5G6B5},
		{PF_B8G8R8, 16, 0, PF_B5G6R5},
		{PF_X8B8G8R8, 16, 0, PF_B5G6R5},
		{PF_A8R8G8B8, 16, 0, PF_A4R4G4B4},
		{PF_B8G8R8A8, 16, 0, PF_A4R4G4B4},
		{PF_A2B10G10R10, 16, 0, PF_A1R5G5B5},
		{PF_R5G6B5, 32, 0, PF_X8R8G8B8},
		{PF_B5G6R5, 32, 0, PF_X8B8G8R8},
		{PF_A4R4G4B4, 32, 0, PF_A8R8G8B8},
		{PF_A1R5G5B5, 32, 0, PF_A2R10G10B10},
		{PF_FLOAT32_RGBA, 0, 16, PF_FLOAT16_RGBA},
		{PF_FLOAT16_RGB, 0, 32, PF_FLOAT32_RGB},
		{PF_FLOAT32_R, 16, 16, PF_FLOAT16_R},
		{PF_R8G8B8, 8, 0, PF_R8G8B8},
		{PF_R5G6B5, 16, 0, PF_R5G6B5},
		{PF_L8, 32, 32, PF_L8},
		{PF_FLOAT32_GR, 0, 16, PF_FLOAT32_GR},
	}
	for _, tt := range tests {
		if got := FormatForBitDepths(tt.f, tt.intBits, tt.floatBits); got != tt.want {
			t.Errorf("FormatForBitDepths(%v, %d, %d) = %v, want %v",
				tt.f, tt.intBits, tt.floatBits, got, tt.want)
		}
	}
}
