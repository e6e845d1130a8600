package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/blockcodec"
)

// ErrNotUpdatable is returned when a texture supports neither region nor
// whole-texture updates.
var ErrNotUpdatable = errors.New("gpu: texture cannot be updated")

// UploaderOption configures an Uploader.
type UploaderOption func(*uploaderOptions)

type uploaderOptions struct {
	converter *pixfmt.Converter
}

// WithConverter converts uploads on the given Converter's workers instead of
// the calling goroutine. The Uploader does not close it.
func WithConverter(c *pixfmt.Converter) UploaderOption {
	return func(o *uploaderOptions) {
		o.converter = c
	}
}

// Uploader turns pixel boxes of any format into RGBA textures.
//
// Example:
//
//	up := gpu.NewUploader(drawer.TextureCreator())
//	tex, err := up.Upload(box)
//	if err != nil {
//	    return err
//	}
//	drawer.DrawTexture(tex, 0, 0)
type Uploader struct {
	creator gpucontext.TextureCreator
	opts    uploaderOptions
}

// NewUploader returns an Uploader creating textures with creator.
func NewUploader(creator gpucontext.TextureCreator, opts ...UploaderOption) *Uploader {
	u := &Uploader{creator: creator}
	for _, opt := range opts {
		opt(&u.opts)
	}
	return u
}

// Upload creates a texture holding src. src must be two-dimensional.
func (u *Uploader) Upload(src pixfmt.PixelBox) (gpucontext.Texture, error) {
	data, err := u.RGBA(src)
	if err != nil {
		return nil, err
	}
	tex, err := u.creator.NewTextureFromRGBA(src.Width(), src.Height(), data)
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture: %w", err)
	}
	pixfmt.Logger().Debug("gpu: texture uploaded",
		"format", src.Format, "width", src.Width(), "height", src.Height())
	return tex, nil
}

// Update writes src into tex with its top-left corner at (x, y). Textures
// without region updates are accepted when src covers them entirely.
func (u *Uploader) Update(tex gpucontext.Texture, x, y int, src pixfmt.PixelBox) error {
	data, err := u.RGBA(src)
	if err != nil {
		return err
	}
	w, h := src.Width(), src.Height()

	if r, ok := tex.(gpucontext.TextureRegionUpdater); ok {
		if err := r.UpdateRegion(x, y, w, h, data); err != nil {
			return fmt.Errorf("gpu: update region: %w", err)
		}
		return nil
	}
	whole := x == 0 && y == 0 && w == tex.Width() && h == tex.Height()
	if up, ok := tex.(gpucontext.TextureUpdater); ok && whole {
		if err := up.UpdateData(data); err != nil {
			return fmt.Errorf("gpu: update data: %w", err)
		}
		return nil
	}
	return ErrNotUpdatable
}

// RGBA returns src as tight PF_BYTE_RGBA rows, decoding block-compressed
// data first.
func (u *Uploader) RGBA(src pixfmt.PixelBox) ([]byte, error) {
	if src.Depth() != 1 {
		return nil, fmt.Errorf("gpu: depth %d: %w", src.Depth(), pixfmt.ErrInvalidParameter)
	}
	w, h := src.Width(), src.Height()
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("gpu: extent %dx%d: %w", w, h, pixfmt.ErrInvalidParameter)
	}
	dst := pixfmt.NewPixelBox(w, h, 1, pixfmt.PF_BYTE_RGBA, make([]byte, w*h*4))

	var err error
	switch {
	case src.Format.IsCompressed():
		err = blockcodec.Decode(src.Data, src.Format, w, h, dst)
	case u.opts.converter != nil:
		err = u.opts.converter.Convert(src, dst)
	default:
		err = pixfmt.BulkPixelConversion(src, dst)
	}
	if err != nil {
		return nil, err
	}
	return dst.Data, nil
}
