package pixfmt

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestConverterMatchesBulk(t *testing.T) {
	c := NewConverter(4)
	defer c.Close()

	tests := []struct {
		name     string
		w, h, d  int
		srcPitch int
		src, dst PixelFormat
	}{
		{"large 2d", 256, 64, 1, 256, PF_BYTE_RGBA, PF_R5G6B5},
		{"pitched", 200, 50, 1, 230, PF_FLOAT32_RGB, PF_BYTE_BGRA},
		{"volume", 64, 32, 8, 64, PF_A8R8G8B8, PF_FLOAT16_RGBA},
		{"small", 4, 4, 1, 4, PF_BYTE_RGB, PF_L8},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := PixelBox{
				Box:        NewBox(tt.w, tt.h, tt.d),
				Format:     tt.src,
				RowPitch:   tt.srcPitch,
				SlicePitch: tt.srcPitch * tt.h,
			}
			src.Data = make([]byte, src.SlicePitch*tt.d*NumElemBytes(tt.src))
			if IsFloatingPoint(tt.src) {
				for i := 0; i < tt.w*tt.h*tt.d; i++ {
					x, y, z := i%tt.w, i/tt.w%tt.h, i/(tt.w*tt.h)
					col := ColourValue{rng.Float32(), rng.Float32(), rng.Float32(), 1}
					if err := src.SetColourAt(col, x, y, z); err != nil {
						t.Fatal(err)
					}
				}
			} else {
				rng.Read(src.Data)
			}

			size := MemorySize(tt.w, tt.h, tt.d, tt.dst)
			want := NewPixelBox(tt.w, tt.h, tt.d, tt.dst, make([]byte, size))
			got := NewPixelBox(tt.w, tt.h, tt.d, tt.dst, make([]byte, size))

			if err := BulkPixelConversion(src, want); err != nil {
				t.Fatalf("BulkPixelConversion() = %v", err)
			}
			if err := c.Convert(src, got); err != nil {
				t.Fatalf("Convert() = %v", err)
			}
			if !bytes.Equal(got.Data, want.Data) {
				t.Error("parallel conversion differs from serial conversion")
			}
		})
	}
}

func TestConverterErrors(t *testing.T) {
	c := NewConverter(2)
	defer c.Close()

	src := NewPixelBox(128, 128, 1, PF_BYTE_RGBA, make([]byte, 128*128*4))
	dst := NewPixelBox(128, 127, 1, PF_BYTE_RGBA, make([]byte, 128*127*4))
	if err := c.Convert(src, dst); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Convert(mismatch) = %v, want ErrDimensionMismatch", err)
	}

	short := NewPixelBox(128, 128, 1, PF_L8, make([]byte, 100))
	if err := c.Convert(src, short); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Convert(short) = %v, want ErrInvalidParameter", err)
	}
}

func TestConverterAfterClose(t *testing.T) {
	c := NewConverter(2)
	c.Close()

	src := NewPixelBox(128, 128, 1, PF_BYTE_RGBA, bytes.Repeat([]byte{9, 8, 7, 6}, 128*128))
	dst := NewPixelBox(128, 128, 1, PF_BYTE_BGRA, make([]byte, 128*128*4))
	if err := c.Convert(src, dst); err != nil {
		t.Fatalf("Convert() after Close = %v", err)
	}
	if !bytes.Equal(dst.Data[:4], []byte{7, 8, 9, 6}) {
		t.Errorf("first pixel = %v, want [7 8 9 6]", dst.Data[:4])
	}
}
