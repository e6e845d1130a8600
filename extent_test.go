package pixfmt

import "testing"

func TestIsValidExtent(t *testing.T) {
	tests := []struct {
		name    string
		w, h, d int
		f       PixelFormat
		want    bool
	}{
		{"dxt1 one block", 4, 4, 1, PF_DXT1, true},
		{"dxt1 partial width", 3, 4, 1, PF_DXT1, false},
		{"dxt1 partial and deep", 5, 5, 2, PF_DXT1, false},
		{"dxt1 deep", 8, 8, 2, PF_DXT1, false},
		{"bc7 wide", 64, 4, 1, PF_BC7_UNORM, true},
		{"etc1 odd", 6, 4, 1, PF_ETC1_RGB8, false},
		{"pvrtc 2bpp", 8, 4, 1, PF_PVRTC_RGB2, true},
		{"pvrtc 2bpp narrow", 4, 4, 1, PF_PVRTC_RGBA2, false},
		{"pvrtc 4bpp", 4, 4, 1, PF_PVRTC_RGB4, true},
		{"pvrtc2 2bpp", 16, 8, 1, PF_PVRTC2_2BPP, true},
		{"uncompressed odd", 3, 5, 7, PF_R8G8B8, true},
		{"uncompressed one", 1, 1, 1, PF_L8, true},
		{"zero width", 0, 4, 1, PF_R8G8B8, true},
		{"zero extent", 0, 0, 1, PF_R8G8B8A8, true},
		{"dxt1 empty", 0, 0, 1, PF_DXT1, true},
		{"negative width", -1, 4, 1, PF_R8G8B8, false},
		{"negative depth", 4, 4, -1, PF_DXT1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidExtent(tt.w, tt.h, tt.d, tt.f); got != tt.want {
				t.Errorf("IsValidExtent(%d, %d, %d, %v) = %v, want %v", tt.w, tt.h, tt.d, tt.f, got, tt.want)
			}
		})
	}
}

func TestMemorySize(t *testing.T) {
	tests := []struct {
		name    string
		w, h, d int
		f       PixelFormat
		want    int
	}{
		{"dxt1 8x8", 8, 8, 1, PF_DXT1, 32},
		{"dxt1 partial block", 5, 5, 1, PF_DXT1, 32},
		{"dxt1 1x1", 1, 1, 1, PF_DXT1, 8},
		{"dxt5 8x8", 8, 8, 1, PF_DXT5, 64},
		{"bc4 4x4x2", 4, 4, 2, PF_BC4_UNORM, 16},
		{"bc5 4x4", 4, 4, 1, PF_BC5_SNORM, 16},
		{"bc6h 8x4", 8, 4, 1, PF_BC6H_UF16, 32},
		{"etc1 4x8", 4, 8, 1, PF_ETC1_RGB8, 16},
		{"pvrtc 2bpp minimum", 1, 1, 1, PF_PVRTC_RGB2, 32},
		{"pvrtc 2bpp 32x32", 32, 32, 1, PF_PVRTC_RGBA2, 256},
		{"pvrtc 4bpp minimum", 1, 1, 1, PF_PVRTC_RGB4, 32},
		{"pvrtc 4bpp 16x16", 16, 16, 2, PF_PVRTC_RGBA4, 256},
		{"pvrtc2 2bpp", 16, 8, 1, PF_PVRTC2_2BPP, 32},
		{"pvrtc2 4bpp", 5, 5, 1, PF_PVRTC2_4BPP, 32},
		{"rgba8", 3, 5, 2, PF_R8G8B8A8, 120},
		{"float32 rgb", 2, 2, 1, PF_FLOAT32_RGB, 48},
		{"unknown", 4, 4, 1, PF_UNKNOWN, 0},
		{"zero extent", 0, 4, 1, PF_R8G8B8A8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MemorySize(tt.w, tt.h, tt.d, tt.f); got != tt.want {
				t.Errorf("MemorySize(%d, %d, %d, %v) = %d, want %d", tt.w, tt.h, tt.d, tt.f, got, tt.want)
			}
		})
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		f       PixelFormat
		w, h, n int
	}{
		{PF_DXT1, 4, 4, 8},
		{PF_DXT3, 4, 4, 16},
		{PF_PVRTC_RGB2, 8, 4, 8},
		{PF_R8G8B8, 1, 1, 3},
		{PF_UNKNOWN, 0, 0, 0},
	}
	for _, tt := range tests {
		w, h, n := BlockSize(tt.f)
		if w != tt.w || h != tt.h || n != tt.n {
			t.Errorf("BlockSize(%v) = %d, %d, %d, want %d, %d, %d", tt.f, w, h, n, tt.w, tt.h, tt.n)
		}
	}
}
