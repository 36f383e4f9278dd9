package renderer

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"

	"github.com/avandyck/raydemos/pkg/core"
)

// Framebuffer is a flat row-major pixel buffer: index = j*Width + i, with the
// row index varying slower than the column index. A render fully populates
// every slot; there are no partial results.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer for the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the flat buffer index for pixel (i, j)
func (fb *Framebuffer) Index(i, j int) int {
	return j*fb.Width + i
}

// At returns the color stored for pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[fb.Index(i, j)]
}

// Set stores the color for pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[fb.Index(i, j)] = c
}

// ToImage converts the buffer to an RGBA image in canonical display order
// (row height-1 at the top). Channels are mapped with the 255.99 truncation
// and clamped to [0,1] first: unlike the textual writer, a byte image cannot
// represent out-of-range channels.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := fb.Height - 1; j >= 0; j-- {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0, 1)
			img.SetRGBA(i, fb.Height-1-j, color.RGBA{
				R: uint8(255.99 * c.X),
				G: uint8(255.99 * c.Y),
				B: uint8(255.99 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// LuminanceStats returns the mean and standard deviation of the perceptual
// luminance across all pixels.
func (fb *Framebuffer) LuminanceStats() (mean, stddev float64) {
	lum := make([]float64, len(fb.Pixels))
	for idx, p := range fb.Pixels {
		lum[idx] = p.Luminance()
	}
	return stat.Mean(lum, nil), stat.StdDev(lum, nil)
}
