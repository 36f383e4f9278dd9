package output

import (
	"fmt"
	"image"
	_ "image/jpeg" // registers JPEG for DecodeImage
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/avandyck/raydemos/pkg/renderer"
)

// Format identifies a supported output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat maps a user-supplied format name to a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	case FormatTIFF:
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: ppm, png, bmp, tiff)", name)
	}
}

// Encode writes the framebuffer to w in the given format. Binary formats
// clamp channels to fit their byte range; only PPM can carry the renderer's
// unclamped values, controlled by clamp.
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format, clamp bool) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb, clamp)
	case FormatPNG:
		return png.Encode(w, fb.ToImage())
	case FormatBMP:
		return bmp.Encode(w, fb.ToImage())
	case FormatTIFF:
		return tiff.Encode(w, fb.ToImage(), nil)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// EncodeImage writes an already-assembled image to w in the given format.
// PPM is not supported here; it is specific to framebuffers.
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// DecodeImage reads a PNG, JPEG or BMP image from r
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
