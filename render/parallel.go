package render

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Render traces every pixel of tr's camera using threads worker
// goroutines and returns the assembled image. It is equivalent to calling
// RenderProgress with a nil counter.
func Render(ctx context.Context, tr Tracer, threads int) (*Image, error) {
	return RenderProgress(ctx, tr, threads, nil)
}

// RenderProgress is Render with an optional row-completion counter: if
// counter is non-nil, it is incremented once per completed row, the way
// the spec's atomic progress counter is meant to be observed by a caller
// polling from another goroutine.
//
// The image is partitioned into threads contiguous row-blocks: thread t
// owns rows [t*floor(H/T), (t+1)*floor(H/T)), except the last thread,
// which absorbs any remainder rows. Each worker only ever writes rows it
// owns, so no lock is needed on the image itself. ctx is checked once per
// row; a caller that cancels it gets a partially written image back along
// with ctx.Err().
func RenderProgress(ctx context.Context, tr Tracer, threads int, counter *atomic.Int64) (*Image, error) {
	if threads < 1 {
		threads = 1
	}
	img := NewImage(tr.Camera.Width, tr.Camera.Height)

	blockSize := tr.Camera.Height / threads
	g, gctx := errgroup.WithContext(ctx)

	for t := 0; t < threads; t++ {
		start := t * blockSize
		end := start + blockSize
		if t == threads-1 {
			end = tr.Camera.Height
		}
		g.Go(func() error {
			for y := start; y < end; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := 0; x < tr.Camera.Width; x++ {
					img.Set(x, y, tr.TracePixel(x, y))
				}
				if counter != nil {
					counter.Add(1)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return img, err
	}
	return img, nil
}
