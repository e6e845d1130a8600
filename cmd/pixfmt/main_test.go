package main

import (
	"bytes"
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/gogpu/pixfmt"
)

func runCmd(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := runCmd(t, nil, "list")
	if err != nil {
		t.Fatalf("list = %v", err)
	}
	for _, want := range []string{"NAME", "PF_R8G8B8A8", "PF_DXT1", "HASALPHA|NATIVEENDIAN"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
	// A header plus one line per code, PF_UNKNOWN included.
	if lines := strings.Count(out, "\n"); lines != int(pixfmt.PF_COUNT)+1 {
		t.Errorf("list printed %d lines, want %d", lines, pixfmt.PF_COUNT+1)
	}

	out, _, err = runCmd(t, nil, "list", "-accessible")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "PF_DXT1") || strings.Contains(out, "PF_UNKNOWN") {
		t.Error("list -accessible printed an inaccessible format")
	}
}

func TestBNF(t *testing.T) {
	out, _, err := runCmd(t, nil, "bnf", "-accessible")
	if err != nil {
		t.Fatal(err)
	}
	if want := pixfmt.BNFExpression(true) + "\n"; out != want {
		t.Errorf("bnf = %q, want %q", out, want)
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-format", "dxt1", "-size", "8x8"}, []string{"PF_DXT1", "4x4, 8 bytes", "32 bytes", "decoder"}},
		{[]string{"-format", "PF_R5G6B5", "-size", "3x2x2"}, []string{"element", "2 bytes", "24 bytes", "[5 6 5 0]"}},
	}
	for _, tt := range tests {
		out, _, err := runCmd(t, nil, append([]string{"info"}, tt.args...)...)
		if err != nil {
			t.Fatalf("info %v = %v", tt.args, err)
		}
		for _, want := range tt.want {
			if !strings.Contains(out, want) {
				t.Errorf("info %v output missing %q:\n%s", tt.args, want, out)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, stdcolor.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, stdcolor.NRGBA{R: 40, G: 50, B: 60, A: 255})
	var in bytes.Buffer
	if err := png.Encode(&in, img); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCmd(t, in.Bytes(), "convert", "-format", "byte_bgr", "-workers", "2")
	if err != nil {
		t.Fatalf("convert = %v", err)
	}
	if want := []byte{30, 20, 10, 60, 50, 40}; !bytes.Equal([]byte(out), want) {
		t.Errorf("convert output = %v, want %v", []byte(out), want)
	}
}

func TestDecode(t *testing.T) {
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0}
	out, _, err := runCmd(t, block, "-v", "decode", "-format", "DXT1", "-size", "4x4")
	if err != nil {
		t.Fatalf("decode = %v", err)
	}
	img, err := png.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if r, g, b, a := img.At(3, 3).RGBA(); r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("pixel (3,3) = %d,%d,%d,%d, want opaque red", r, g, b, a)
	}
}

func TestVerboseLogs(t *testing.T) {
	_, stderr, err := runCmd(t, []byte{0x00, 0xF8, 0, 0, 0, 0, 0, 0}, "-v", "decode", "-format", "DXT1", "-size", "4x4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "blockcodec: decode") {
		t.Errorf("stderr missing decode log:\n%s", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"missing format", []string{"info"}},
		{"unknown format", []string{"info", "-format", "PF_NOPE"}},
		{"bad size", []string{"info", "-format", "L8", "-size", "4"}},
		{"negative size", []string{"info", "-format", "L8", "-size", "4x-1"}},
		{"convert to compressed", []string{"convert", "-format", "DXT5"}},
		{"decode uncompressed", []string{"decode", "-format", "L8", "-size", "4x4"}},
		{"decode volume", []string{"decode", "-format", "DXT1", "-size", "4x4x2"}},
		{"bad flag", []string{"list", "-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCmd(t, nil, tt.args...); err == nil {
				t.Errorf("run(%v) = nil, want error", tt.args)
			}
		})
	}

	if _, _, err := runCmd(t, nil, "frobnicate"); !errors.Is(err, errUsage) {
		t.Errorf("unknown command = %v, want errUsage", err)
	}
}
