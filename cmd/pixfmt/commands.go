package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/blockcodec"
	"github.com/gogpu/pixfmt/gpu"
)

func (e *env) list(args []string) error {
	fs := e.flags("list")
	accessible := fs.Bool("accessible", false, "only formats with per-pixel access")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tBYTES\tBITS\tFLAGS")
	for _, f := range pixfmt.Formats(*accessible) {
		d := pixfmt.BitDepths(f)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d/%d/%d/%d\t%v\n",
			f, f, f.ElemBytes(), d[0], d[1], d[2], d[3], f.Flags())
	}
	return tw.Flush()
}

func (e *env) bnf(args []string) error {
	fs := e.flags("bnf")
	accessible := fs.Bool("accessible", false, "only formats with per-pixel access")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	_, err := fmt.Fprintln(e.stdout, pixfmt.BNFExpression(*accessible))
	return err
}

func (e *env) info(args []string) error {
	fs := e.flags("info")
	name := fs.String("format", "", "format name")
	size := fs.String("size", "1x1x1", "extent as WxH or WxHxD")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	f, err := parseFormat(*name)
	if err != nil {
		return err
	}
	w, h, d, err := parseSize(*size)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "name\t%s\n", f)
	fmt.Fprintf(tw, "code\t%d\n", f)
	fmt.Fprintf(tw, "flags\t%v\n", f.Flags())
	fmt.Fprintf(tw, "components\t%d x %v\n", pixfmt.ComponentCountOf(f), pixfmt.ComponentTypeOf(f))
	if f.IsCompressed() {
		bw, bh, bb := pixfmt.BlockSize(f)
		fmt.Fprintf(tw, "block\t%dx%d, %d bytes\n", bw, bh, bb)
		fmt.Fprintf(tw, "decoder\t%v\n", blockcodec.Supported(f))
	} else {
		bits, masks, shifts := pixfmt.BitDepths(f), pixfmt.BitMasks(f), pixfmt.BitShifts(f)
		fmt.Fprintf(tw, "element\t%d bytes\n", f.ElemBytes())
		fmt.Fprintf(tw, "bits\t%v\n", bits)
		fmt.Fprintf(tw, "masks\t%#08x %#08x %#08x %#08x\n", masks[0], masks[1], masks[2], masks[3])
		fmt.Fprintf(tw, "shifts\t%v\n", shifts)
	}
	fmt.Fprintf(tw, "size %dx%dx%d\t%d bytes\n", w, h, d, pixfmt.MemorySize(w, h, d, f))
	fmt.Fprintf(tw, "valid extent\t%v\n", pixfmt.IsValidExtent(w, h, d, f))
	if tf, ok := gpu.TextureFormat(f); ok {
		fmt.Fprintf(tw, "gpu\t%v\n", tf)
	} else {
		fmt.Fprintf(tw, "gpu\tupload as %v\n", gpu.UploadFormat(f))
	}
	return tw.Flush()
}

func (e *env) convert(args []string) error {
	fs := e.flags("convert")
	name := fs.String("format", "", "destination format name")
	workers := fs.Int("workers", 0, "conversion goroutines (0 = GOMAXPROCS)")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	f, err := parseFormat(*name)
	if err != nil {
		return err
	}
	if !f.IsAccessible() {
		return fmt.Errorf("cannot convert to %v: %w", f, pixfmt.ErrUnsupportedConversion)
	}

	in, err := e.input(fs)
	if err != nil {
		return err
	}
	defer in.Close()
	img, kind, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	pixfmt.Logger().Debug("pixfmt: image decoded", "kind", kind, "bounds", img.Bounds())

	src := pixfmt.FromImage(img)
	w, h := src.Width(), src.Height()
	dst := pixfmt.NewPixelBox(w, h, 1, f, make([]byte, pixfmt.MemorySize(w, h, 1, f)))

	conv := pixfmt.NewConverter(*workers)
	defer conv.Close()
	if err := conv.Convert(src, dst); err != nil {
		return err
	}
	return e.write(*out, func(wr io.Writer) error {
		_, err := wr.Write(dst.Data)
		return err
	})
}

func (e *env) decode(args []string) error {
	fs := e.flags("decode")
	name := fs.String("format", "", "compressed source format name")
	size := fs.String("size", "", "image extent as WxH")
	out := fs.String("out", "", "output PNG file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	f, err := parseFormat(*name)
	if err != nil {
		return err
	}
	w, h, d, err := parseSize(*size)
	if err != nil {
		return err
	}
	if d != 1 {
		return fmt.Errorf("decode: depth %d: %w", d, pixfmt.ErrInvalidParameter)
	}

	in, err := e.input(fs)
	if err != nil {
		return err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	dst := pixfmt.NewPixelBox(w, h, 1, pixfmt.PF_BYTE_RGBA, make([]byte, w*h*4))
	if err := blockcodec.Decode(data, f, w, h, dst); err != nil {
		return err
	}
	img, err := dst.ToImage()
	if err != nil {
		return err
	}
	return e.write(*out, func(wr io.Writer) error {
		return png.Encode(wr, img)
	})
}

// write runs fn against the output and closes it, keeping the first error.
func (e *env) write(path string, fn func(io.Writer) error) (err error) {
	wc, err := e.output(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(wc)
}

// parseFormat resolves a format name, with or without the PF_ prefix.
func parseFormat(name string) (pixfmt.PixelFormat, error) {
	if name == "" {
		return pixfmt.PF_UNKNOWN, errors.New("missing -format")
	}
	if f := pixfmt.FormatFromName(name, false, false); f != pixfmt.PF_UNKNOWN {
		return f, nil
	}
	if f := pixfmt.FormatFromName("PF_"+name, false, false); f != pixfmt.PF_UNKNOWN {
		return f, nil
	}
	return pixfmt.PF_UNKNOWN, fmt.Errorf("unknown format %q", name)
}

// parseSize reads WxH or WxHxD; the depth defaults to 1.
func parseSize(s string) (w, h, d int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("bad size %q, want WxH or WxHxD", s)
	}
	dims := []int{1, 1, 1}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("bad size %q, want WxH or WxHxD", s)
		}
		dims[i] = n
	}
	return dims[0], dims[1], dims[2], nil
}
