package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/geo/s1"
	"github.com/owlpinetech/flatsphere"

	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

var _ tutorial.Surface = (*Plane)(nil)

// gridStep is the graticule spacing in degrees.
const gridStep = 30

// Plane draws strokes on a flat equirectangular map of the sphere.
// The sphere centre has no map position; segments touching it are skipped.
type Plane struct {
	canvas
	proj          flatsphere.Equirectangular
	width, height float64
	radius        float64
}

// NewPlane returns a cleared map size pixels wide and size/2 pixels high.
func NewPlane(size int, radius float64) (*Plane, error) {
	if size < 2 {
		return nil, fmt.Errorf("plane: size must be at least 2, got %d", size)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("plane: radius must be positive, got %v", radius)
	}

	p := &Plane{
		canvas: newCanvas(size, size/2),
		proj:   flatsphere.NewEquirectangular(0),
		width:  float64(size),
		height: float64(size / 2),
		radius: radius,
	}
	p.ClearPaths()
	return p, nil
}

// ClearPaths repaints the background and the graticule.
func (p *Plane) ClearPaths() {
	p.fill(SphereColor)
	for lon := -180.0; lon <= 180; lon += gridStep {
		x0, y0 := p.Pixel(lon, 90)
		x1, y1 := p.Pixel(lon, -90)
		p.line(x0, y0, x1, y1, 1, GridColor)
	}
	for lat := -90.0; lat <= 90; lat += gridStep {
		x0, y0 := p.Pixel(-180, lat)
		x1, y1 := p.Pixel(180, lat)
		p.line(x0, y0, x1, y1, 1, GridColor)
	}
	x, y := p.Pixel(0, 0)
	p.line(x, 0, x, p.height, 1, OutlineColor)
	p.line(0, y, p.width, y, 1, OutlineColor)
}

// DisplayPaths draws each path in longitude/latitude space, splitting
// segments that cross the antimeridian.
func (p *Plane) DisplayPaths(c color.RGBA, paths ...geo.Path) {
	pixelsPerUnit := p.width / (2 * math.Pi * p.radius)

	for _, path := range paths {
		pts := path.Points()
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			if a.IsCenter() || b.IsCenter() {
				continue
			}
			width := strokeWidth(b.Width(), pixelsPerUnit)
			p.segment(a.Longitude(), a.Latitude(), b.Longitude(), b.Latitude(), width, c)
		}
	}
}

func (p *Plane) segment(lon0, lat0, lon1, lat1, width float64, c color.RGBA) {
	if math.Abs(lon1-lon0) <= 180 {
		x0, y0 := p.Pixel(lon0, lat0)
		x1, y1 := p.Pixel(lon1, lat1)
		p.line(x0, y0, x1, y1, width, c)
		return
	}

	// unwrap lon1 next to lon0 and cut where the segment meets the edge
	edge := 180.0
	if lon0 < 0 {
		edge = -180
	}
	unwrapped := lon1 + 2*edge
	t := (edge - lon0) / (unwrapped - lon0)
	lat := lat0 + t*(lat1-lat0)

	x0, y0 := p.Pixel(lon0, lat0)
	xe, ye := p.Pixel(edge, lat)
	p.line(x0, y0, xe, ye, width, c)

	xs, ys := p.Pixel(-edge, lat)
	x1, y1 := p.Pixel(lon1, lat1)
	p.line(xs, ys, x1, y1, width, c)
}

// Pixel maps a longitude/latitude pair in degrees onto the image.
func (p *Plane) Pixel(lon, lat float64) (x, y float64) {
	px, py := p.proj.Project(
		(s1.Angle(lat) * s1.Degree).Radians(),
		(s1.Angle(lon) * s1.Degree).Radians(),
	)
	bounds := p.proj.PlanarBounds()
	x = (px - bounds.XMin) / bounds.Width() * p.width
	y = (1 - (py-bounds.YMin)/bounds.Height()) * p.height
	return x, y
}
