package sinks

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bob-anderson-ok/schwarzschildray/render"
)

// WriteCSV encodes img as "x,y,r,g,b" rows with four-decimal RGB values,
// one row per pixel in row-major order, preceded by a header row.
func WriteCSV(w io.Writer, img *render.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "x,y,r,g,b"); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d,%d,%.4f,%.4f,%.4f\n", x, y, c[0], c[1], c[2]); err != nil {
				return fmt.Errorf("writing CSV row (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
