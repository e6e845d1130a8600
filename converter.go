package pixfmt

import (
	"fmt"

	"github.com/gogpu/pixfmt/internal/parallel"
)

// minBandPixels keeps bands large enough that scheduling stays cheap next to
// the conversion itself.
const minBandPixels = 4096

// Converter runs BulkPixelConversion over bands of rows on a pool of
// goroutines. A Converter is safe for concurrent use; Close releases its
// workers.
type Converter struct {
	pool *parallel.WorkerPool
}

// NewConverter starts a converter with the given number of workers. If
// workers is 0 or negative, GOMAXPROCS is used.
func NewConverter(workers int) *Converter {
	pool := parallel.NewWorkerPool(workers)
	Logger().Debug("pixfmt: converter started", "workers", pool.Workers())
	return &Converter{pool: pool}
}

// Workers returns the number of worker goroutines.
func (c *Converter) Workers() int {
	return c.pool.Workers()
}

// Convert is BulkPixelConversion split into bands of rows converted in
// parallel. Small or compressed boxes are converted on the calling
// goroutine. It returns the first band error.
func (c *Converter) Convert(src, dst PixelBox) error {
	if !sameExtents(src.Box, dst.Box) || src.Empty() ||
		IsCompressed(src.Format) || IsCompressed(dst.Format) {
		return BulkPixelConversion(src, dst)
	}

	rows := src.Height() * src.Depth()
	bands := min(c.pool.Workers(), src.Width()*rows/minBandPixels)
	if bands <= 1 {
		return BulkPixelConversion(src, dst)
	}
	if err := validatePair(src, dst); err != nil {
		return err
	}

	spans := parallel.Split(rows, bands)
	errs := make([]error, len(spans))
	tasks := make([]func(), len(spans))
	for i, span := range spans {
		tasks[i] = func() {
			errs[i] = convertRows(src, dst, span.Start, span.End)
		}
	}
	c.pool.ExecuteAll(tasks)

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// convertRows converts rows [start, end) of the boxes, counting rows across
// slices.
func convertRows(src, dst PixelBox, start, end int) error {
	h := src.Height()
	for r := start; r < end; {
		z, y := r/h, r%h
		n := min(end-r, h-y)
		band := func(pb PixelBox) (PixelBox, error) {
			return pb.SubVolume(Box{
				Left: pb.Left, Right: pb.Right,
				Top: pb.Top + y, Bottom: pb.Top + y + n,
				Front: pb.Front + z, Back: pb.Front + z + 1,
			})
		}
		s, err := band(src)
		if err != nil {
			return fmt.Errorf("source band: %w", err)
		}
		d, err := band(dst)
		if err != nil {
			return fmt.Errorf("destination band: %w", err)
		}
		if err := BulkPixelConversion(s, d); err != nil {
			return err
		}
		r += n
	}
	return nil
}

// Close stops the workers. Convert keeps working after Close, on the
// calling goroutine.
func (c *Converter) Close() {
	c.pool.Close()
}
