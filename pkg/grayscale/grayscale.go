// Package grayscale converts color images to 8-bit grayscale using the same
// perceptual luminance weights as the renderer's statistics.
package grayscale

import (
	"image"
	"image/color"

	"github.com/avandyck/raydemos/pkg/executor"
)

// Convert produces a grayscale copy of img. Rows are independent, so the row
// loop is distributed by the executor; each row writes only its own slice of
// the output buffer. A nil executor falls back to sequential execution.
func Convert(img image.Image, exec executor.Executor) *image.Gray {
	if exec == nil {
		exec = executor.Sequential{}
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	exec.Execute(bounds.Dy(), func(row int) {
		y := bounds.Min.Y + row
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; weights match core.Vec3.Luminance.
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			gray.SetGray(x, y, color.Gray{Y: uint8(lum / 257.0)})
		}
	})

	return gray
}
