package grayscale

import (
	"image"
	"image/color"
	"testing"

	"github.com/avandyck/raydemos/pkg/executor"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	colors := []color.RGBA{
		{R: 255, A: 255},                 // red
		{G: 255, A: 255},                 // green
		{B: 255, A: 255},                 // blue
		{R: 255, G: 255, B: 255, A: 255}, // white
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, colors[(x+y)%len(colors)])
		}
	}
	return img
}

func TestConvert_LuminanceWeights(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(2, 0, color.RGBA{B: 255, A: 255})

	gray := Convert(img, nil)

	tests := []struct {
		x        int
		expected uint8
	}{
		{0, 76},  // 0.299 * 255
		{1, 149}, // 0.587 * 255
		{2, 29},  // 0.114 * 255
	}
	for _, tt := range tests {
		if got := gray.GrayAt(tt.x, 0).Y; got != tt.expected {
			t.Errorf("Pixel %d: expected gray %d, got %d", tt.x, tt.expected, got)
		}
	}
}

func TestConvert_WhiteAndBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 255})

	gray := Convert(img, nil)

	if got := gray.GrayAt(0, 0).Y; got != 255 {
		t.Errorf("White: expected 255, got %d", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("Black: expected 0, got %d", got)
	}
}

func TestConvert_SequentialMatchesParallel(t *testing.T) {
	img := testImage()

	seq := Convert(img, executor.Sequential{})
	par := Convert(img, executor.NewPool(4))

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if seq.GrayAt(x, y) != par.GrayAt(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: sequential %v, parallel %v",
					x, y, seq.GrayAt(x, y), par.GrayAt(x, y))
			}
		}
	}
}

func TestConvert_NonZeroOriginBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(2, 3, 6, 7))
	for y := 3; y < 7; y++ {
		for x := 2; x < 6; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	gray := Convert(img, executor.NewPool(2))

	if gray.Bounds() != img.Bounds() {
		t.Fatalf("Bounds %v, want %v", gray.Bounds(), img.Bounds())
	}
	if got := gray.GrayAt(4, 5).Y; got != 128 {
		t.Errorf("Expected gray 128, got %d", got)
	}
}
