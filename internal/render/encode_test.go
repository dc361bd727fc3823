package render

import (
	"bytes"
	"errors"
	"image"
	"testing"

	_ "golang.org/x/image/webp"

	"github.com/woozymasta/spherepath/internal/geo"
)

func TestEncode_Decodes(t *testing.T) {
	g, _ := NewGlobe(96, 5, geo.Orientation{})

	for _, format := range []string{FormatPNG, FormatWebP} {
		var buf bytes.Buffer
		if err := Encode(&buf, g.Image(), format, 85); err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}

		img, name, err := image.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if name != format {
			t.Errorf("want format %s, got %s", format, name)
		}
		if img.Bounds().Dx() != 96 || img.Bounds().Dy() != 96 {
			t.Errorf("%s: unexpected bounds %v", format, img.Bounds())
		}
	}
}

func TestEncode_Unsupported(t *testing.T) {
	g, _ := NewGlobe(64, 5, geo.Orientation{})
	err := Encode(&bytes.Buffer{}, g.Image(), "gif", 85)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
	if _, err := ContentType("gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestContentType(t *testing.T) {
	if ct, _ := ContentType(FormatWebP); ct != "image/webp" {
		t.Errorf("want image/webp, got %s", ct)
	}
	if ct, _ := ContentType(FormatPNG); ct != "image/png" {
		t.Errorf("want image/png, got %s", ct)
	}
}

func TestScale(t *testing.T) {
	p, _ := NewPlane(256, 5)
	small := Scale(p.Image(), 64)
	if b := small.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("unexpected bounds %v", b)
	}
}
