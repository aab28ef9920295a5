// Package render implements the relativistic ray tracer: per-pixel photon
// back-propagation, termination-event detection, the procedural celestial
// background, and the parallel assembly of the final raster.
package render

// RGB is a linear color triple, each channel nominally in [0, 1]
// (producers are expected to clamp; nothing here re-clamps on read).
type RGB [3]float64

// Image is a row-major H x W raster of RGB triples. Each worker owns a
// contiguous block of rows and writes each pixel in its block exactly
// once; there is no other shared mutable state during a render.
type Image struct {
	Width, Height int
	Pix           []RGB // row-major, index = y*Width + x
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the color of pixel (x, y).
func (img *Image) At(x, y int) RGB {
	return img.Pix[y*img.Width+x]
}

// Set writes the color of pixel (x, y). It is the caller's responsibility
// to ensure no two goroutines write the same pixel concurrently.
func (img *Image) Set(x, y int, c RGB) {
	img.Pix[y*img.Width+x] = c
}
