package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/r3"

	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

var _ tutorial.Surface = (*Globe)(nil)

// globeFill is the share of the image the sphere disk spans.
const globeFill = 0.9

// Globe draws strokes on an orthographic view of the sphere seen from +Z
// after the orientation is applied.
type Globe struct {
	canvas
	orientation geo.Orientation
	radius      float64
	center      float64 // pixel coordinate of the sphere centre on both axes
	scale       float64 // pixels per sphere unit
}

// NewGlobe returns a cleared size x size globe for a sphere of the given radius.
func NewGlobe(size int, radius float64, o geo.Orientation) (*Globe, error) {
	if size <= 0 {
		return nil, fmt.Errorf("globe: size must be positive, got %d", size)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("globe: radius must be positive, got %v", radius)
	}

	half := float64(size) / 2
	g := &Globe{
		canvas:      newCanvas(size, size),
		orientation: o,
		radius:      radius,
		center:      half,
		scale:       half * globeFill / radius,
	}
	g.ClearPaths()
	return g, nil
}

// ClearPaths repaints the background and the sphere disk.
func (g *Globe) ClearPaths() {
	g.fill(BackgroundColor)
	r := g.radius * g.scale
	g.disk(g.center, g.center, r, SphereColor)
	g.ring(g.center, g.center, r, 1.5, OutlineColor)
}

// DisplayPaths draws each path. Segments whose midpoint lies behind the
// visible hemisphere are dimmed.
func (g *Globe) DisplayPaths(c color.RGBA, paths ...geo.Path) {
	for _, p := range paths {
		pts := p.Points()
		for i := 1; i < len(pts); i++ {
			a := g.orientation.Apply(pts[i-1].Cartesian())
			b := g.orientation.Apply(pts[i].Cartesian())

			width := strokeWidth(pts[i].Width(), g.scale)
			x0, y0 := g.pixel(a)
			x1, y1 := g.pixel(b)

			if g.hidden(a.Add(b).Mul(0.5)) {
				g.line(x0, y0, x1, y1, width, dim(c))
			} else {
				g.line(x0, y0, x1, y1, width, c)
			}
		}
		if len(pts) == 1 {
			v := g.orientation.Apply(pts[0].Cartesian())
			x, y := g.pixel(v)
			g.line(x, y, x, y, strokeWidth(pts[0].Width(), g.scale)*2, c)
		}
	}
}

// Project returns the pixel position of a world point and whether it faces
// the viewer.
func (g *Globe) Project(v r3.Vector) (x, y float64, visible bool) {
	r := g.orientation.Apply(v)
	x, y = g.pixel(r)
	return x, y, !g.hidden(r)
}

func (g *Globe) pixel(v r3.Vector) (x, y float64) {
	return g.center + v.X*g.scale, g.center - v.Y*g.scale
}

func (g *Globe) hidden(v r3.Vector) bool {
	return v.Z < 0 && math.Hypot(v.X, v.Y) <= g.radius
}
