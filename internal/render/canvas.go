// Package render rasterizes tutorial strokes into images: an orthographic
// globe and a flat equirectangular map.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Palette shared by both views.
var (
	BackgroundColor = color.RGBA{R: 16, G: 20, B: 24, A: 255}
	SphereColor     = color.RGBA{R: 31, G: 42, B: 54, A: 255}
	OutlineColor    = color.RGBA{R: 106, G: 123, B: 140, A: 255}
	GridColor       = color.RGBA{R: 44, G: 56, B: 68, A: 255}
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 128

// canvas wraps an RGBA image with an anti-aliasing rasterizer.
type canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func newCanvas(width, height int) canvas {
	return canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

func (c *canvas) fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// polygon fills the closed outline through pts.
func (c *canvas) polygon(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p[0]), float32(p[1]))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// line draws a segment of the given pixel width as a filled quad.
func (c *canvas) line(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	half := width / 2
	if length == 0 {
		c.polygon([][2]float64{
			{x0 - half, y0 - half}, {x0 + half, y0 - half},
			{x0 + half, y0 + half}, {x0 - half, y0 + half},
		}, col)
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	c.polygon([][2]float64{
		{x0 + nx, y0 + ny}, {x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny}, {x0 - nx, y0 - ny},
	}, col)
}

func circle(cx, cy, r float64) [][2]float64 {
	pts := make([][2]float64, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func (c *canvas) disk(cx, cy, r float64, col color.Color) {
	c.polygon(circle(cx, cy, r), col)
}

func (c *canvas) ring(cx, cy, r, width float64, col color.Color) {
	pts := circle(cx, cy, r)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.line(a[0], a[1], b[0], b[1], width, col)
	}
}

// Image returns the rendered picture. It is the live buffer, not a copy.
func (c *canvas) Image() *image.RGBA { return c.img }

// dim returns col at reduced opacity.
func dim(col color.RGBA) color.NRGBA {
	return color.NRGBA{R: col.R, G: col.G, B: col.B, A: 80}
}

// strokeWidth converts a width in sphere units into pixels, never thinner
// than one pixel.
func strokeWidth(width, pixelsPerUnit float64) float64 {
	return math.Max(1, width*pixelsPerUnit)
}
