package pixfmt

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FromImage returns a PF_BYTE_RGBA view of img. An *image.NRGBA is viewed in
// place; any other image is first drawn into a new *image.NRGBA.
func FromImage(img image.Image) PixelBox {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride%4 != 0 {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(nrgba, image.Point{}, img, b, draw.Src, nil)
	}

	b := nrgba.Bounds()
	rowPitch := nrgba.Stride / 4
	return PixelBox{
		Box:        NewBox(b.Dx(), b.Dy(), 1),
		Format:     PF_BYTE_RGBA,
		Data:       nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y):],
		RowPitch:   rowPitch,
		SlicePitch: rowPitch * b.Dy(),
	}
}

// ToImage converts the box to a new *image.NRGBA. The box must have a depth
// of 1 and an accessible format; compressed data has to be decoded first.
func (pb PixelBox) ToImage() (*image.NRGBA, error) {
	if pb.Depth() != 1 {
		return nil, fmt.Errorf("%w: image needs depth 1, box has %d", ErrInvalidParameter, pb.Depth())
	}
	img := image.NewNRGBA(image.Rect(0, 0, pb.Width(), pb.Height()))
	if err := BulkPixelConversion(pb, FromImage(img)); err != nil {
		return nil, fmt.Errorf("pixfmt: to image: %w", err)
	}
	return img, nil
}
