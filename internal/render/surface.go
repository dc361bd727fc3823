package render

import (
	"fmt"
	"image"

	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

// Views.
const (
	ViewGlobe = "globe"
	ViewPlane = "plane"
)

// Surface is a tutorial surface backed by an image.
type Surface interface {
	tutorial.Surface
	Image() *image.RGBA
}

// New creates the surface for a view. The orientation only affects the globe.
func New(view string, size int, radius float64, o geo.Orientation) (Surface, error) {
	switch view {
	case ViewGlobe:
		return NewGlobe(size, radius, o)
	case ViewPlane:
		return NewPlane(size, radius)
	default:
		return nil, fmt.Errorf("unknown view %q", view)
	}
}
