// Package output serializes framebuffers to viewable image formats. The
// renderer itself only produces the flat pixel buffer; everything here is a
// consumer of that buffer.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/avandyck/raydemos/pkg/renderer"
)

// WritePPM writes the framebuffer as a plain-text P3 PPM: one RGB triple per
// line, rows from the top of the image down (row height-1 first). Channels
// are mapped with int(255.99*c), a truncation chosen so a channel of exactly
// 1.0 maps to 255 rather than 256.
//
// When clamp is false the mapping is applied to the raw channel values, so a
// shading policy that yields negative or >1 channels produces out-of-range
// integers in the file. That mirrors the unclamped renderer output; pass
// clamp=true to constrain channels to [0,1] first.
func WritePPM(w io.Writer, fb *renderer.Framebuffer, clamp bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for j := fb.Height - 1; j >= 0; j-- {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			if clamp {
				c = c.Clamp(0, 1)
			}
			ir := int(255.99 * c.X)
			ig := int(255.99 * c.Y)
			ib := int(255.99 * c.Z)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
				return fmt.Errorf("writing pixel (%d,%d): %w", i, j, err)
			}
		}
	}

	return bw.Flush()
}
