package tutorial

import (
	"fmt"
	"image/color"

	"github.com/woozymasta/spherepath/internal/geo"
)

// PointDTO is the serialized form of a path point.
type PointDTO struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Scale     float64 `json:"scale" yaml:"scale"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Z         float64 `json:"z" yaml:"z"`
}

// StrokeDTO is the serialized form of a stroke.
type StrokeDTO struct {
	Color  string     `json:"color" yaml:"color"`
	Width  float64    `json:"width" yaml:"width"`
	Points []PointDTO `json:"points" yaml:"points"`
}

// StepDTO is everything drawn for one step.
type StepDTO struct {
	Step    int         `json:"step" yaml:"step"`
	Radius  float64     `json:"radius" yaml:"radius"`
	Strokes []StrokeDTO `json:"strokes" yaml:"strokes"`
}

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PathPoints converts a path into its serialized points.
func PathPoints(p geo.Path) []PointDTO {
	pts := p.Points()
	out := make([]PointDTO, len(pts))
	for i, c := range pts {
		v := c.Cartesian()
		out[i] = PointDTO{
			Longitude: c.Longitude(),
			Latitude:  c.Latitude(),
			Scale:     c.Scale(),
			X:         v.X,
			Y:         v.Y,
			Z:         v.Z,
		}
	}
	return out
}

// StepStrokes converts recorded strokes into their serialized form.
func StepStrokes(step int, radius float64, strokes []Stroke) StepDTO {
	dto := StepDTO{
		Step:    step,
		Radius:  radius,
		Strokes: make([]StrokeDTO, 0, len(strokes)),
	}
	for _, s := range strokes {
		var width float64
		if pts := s.Path.Points(); len(pts) > 0 {
			width = pts[0].Width()
		}
		dto.Strokes = append(dto.Strokes, StrokeDTO{
			Color:  Hex(s.Color),
			Width:  width,
			Points: PathPoints(s.Path),
		})
	}
	return dto
}

// GeoJSON converts recorded strokes into a feature collection of LineStrings.
func GeoJSON(step int, strokes []Stroke) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(len(strokes))
	for i, s := range strokes {
		fc.Features = append(fc.Features, geo.PathFeature(s.Path, map[string]interface{}{
			"step":   step,
			"stroke": i,
			"color":  Hex(s.Color),
		}))
	}
	return fc
}
