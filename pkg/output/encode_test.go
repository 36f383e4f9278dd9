package output

import (
	"bytes"
	"testing"

	"github.com/avandyck/raydemos/pkg/core"
	"github.com/avandyck/raydemos/pkg/renderer"
)

func TestEncode_BinaryFormatsRoundTrip(t *testing.T) {
	fb := renderer.NewFramebuffer(3, 2)
	for idx := range fb.Pixels {
		fb.Pixels[idx] = core.NewVec3(0.2, 0.4, 0.6)
	}

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, fb, format, false); err != nil {
				t.Fatalf("Encode(%s): %v", format, err)
			}
			if buf.Len() == 0 {
				t.Fatal("Expected non-empty output")
			}

			if format == FormatTIFF {
				// DecodeImage covers PNG/JPEG/BMP; the tiff decoder is not
				// registered, the encoded length check above suffices.
				return
			}

			img, err := DecodeImage(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("DecodeImage(%s): %v", format, err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 3 || bounds.Dy() != 2 {
				t.Errorf("Decoded size %dx%d, want 3x2", bounds.Dx(), bounds.Dy())
			}
		})
	}
}
