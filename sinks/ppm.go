// Package sinks writes a rendered image out to a concrete file format: a
// binary PPM for viewing, or a CSV for downstream numeric analysis, the
// same pattern as SaveGrayPNG/SaveGray16PNG write a decoded raster to
// disk in the original diffraction tool.
package sinks

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/bob-anderson-ok/schwarzschildray/render"
)

// ReadPPM decodes a binary (P6) PPM produced by WritePPM back into an
// Image. It exists to make the writer's round-trip property testable, not
// as a general-purpose PPM reader: it accepts exactly the header shape
// WritePPM emits and nothing else.
func ReadPPM(r io.Reader) (*render.Image, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscanf(br, "%s\n%d %d\n%d\n", &magic, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("reading PPM header: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("unsupported PPM magic %q, want P6", magic)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported PPM max value %d, want 255", maxVal)
	}

	img := render.NewImage(width, height)
	buf := make([]byte, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, fmt.Errorf("reading PPM pixel (%d,%d): %w", x, y, err)
			}
			img.Set(x, y, render.RGB{
				float64(buf[0]) / 255,
				float64(buf[1]) / 255,
				float64(buf[2]) / 255,
			})
		}
	}
	return img, nil
}

func clampByte(v float64) byte {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(math.Round(v * 255))
}

// WritePPM encodes img as a binary (P6) PPM to w, clamping each channel
// to [0, 1] before rounding to a byte.
func WritePPM(w io.Writer, img *render.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	buf := make([]byte, 3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			buf[0] = clampByte(c[0])
			buf[1] = clampByte(c[1])
			buf[2] = clampByte(c[2])
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("writing PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
