package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ErrUnsupportedFormat is returned for formats other than png and webp.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ContentType returns the MIME type of an output format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatPNG:
		return "image/png", nil
	case FormatWebP:
		return "image/webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode writes img in the given format. Quality applies to lossy webp only.
func Encode(w io.Writer, img image.Image, format string, quality float32) error {
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		return enc.Encode(w, img)
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: quality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Scale resizes img to the given width keeping its aspect ratio.
func Scale(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
