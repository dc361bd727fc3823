package tutorial

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/geo"
)

// FromConfig builds the tutorial described by cfg. When the configuration does
// not list a shortest path, a great-circle arc with cfg.Samples points is used.
func FromConfig(cfg *config.Config) (Tutorial, error) {
	radius, width := cfg.Sphere.Radius, cfg.Sphere.Width

	start, err := geo.NewCoordinates(cfg.Start.Longitude, cfg.Start.Latitude, radius, width)
	if err != nil {
		return Tutorial{}, fmt.Errorf("start: %w", err)
	}
	end, err := geo.NewCoordinates(cfg.End.Longitude, cfg.End.Latitude, radius, width)
	if err != nil {
		return Tutorial{}, fmt.Errorf("end: %w", err)
	}

	var shortest geo.Path
	if len(cfg.ShortestPath) > 0 {
		coords := make([]geo.Coordinates, len(cfg.ShortestPath))
		for i, p := range cfg.ShortestPath {
			if coords[i], err = geo.NewCoordinates(p.Longitude, p.Latitude, radius, width); err != nil {
				return Tutorial{}, fmt.Errorf("shortest path point %d: %w", i, err)
			}
		}
		shortest, err = geo.NewPath(coords...)
	} else {
		var arc []r3.Vector
		arc, err = geo.GreatCircle(start.Cartesian(), end.Cartesian(), cfg.Samples, radius)
		if err == nil {
			shortest, err = geo.PathFromPoints(arc, radius, width)
		}
	}
	if err != nil {
		return Tutorial{}, fmt.Errorf("shortest path: %w", err)
	}

	t := Tutorial{
		Start:        start,
		End:          end,
		ShortestPath: shortest,
		Samples:      cfg.Samples,
	}
	return t, t.Validate()
}

// DriftReport compares the projected chord with the great-circle arc.
type DriftReport struct {
	Drift           []float64 `json:"drift_degrees" yaml:"drift_degrees"`
	MaxDrift        float64   `json:"max_drift_degrees" yaml:"max_drift_degrees"`
	ChordLength     float64   `json:"chord_length" yaml:"chord_length"`
	ArcLength       float64   `json:"arc_length" yaml:"arc_length"`
	ProjectedLength float64   `json:"projected_length" yaml:"projected_length"`
	Samples         int       `json:"samples" yaml:"samples"`
}

// Drift measures how unevenly the projected chord samples are spread along
// the great-circle arc between the tutorial endpoints.
func Drift(t Tutorial) (DriftReport, error) {
	radius := t.Start.Radius()
	a, b := t.Start.Cartesian(), t.End.Cartesian()

	line, err := geo.StraightLine(a, b, t.Samples)
	if err != nil {
		return DriftReport{}, err
	}
	projected, err := geo.ProjectOntoSphere(line, radius)
	if err != nil {
		return DriftReport{}, err
	}
	arc, err := geo.GreatCircle(a, b, t.Samples, radius)
	if err != nil {
		return DriftReport{}, err
	}
	drift, err := geo.SpacingDrift(projected, arc)
	if err != nil {
		return DriftReport{}, err
	}
	arcLength, err := geo.ArcLength(a, b, radius)
	if err != nil {
		return DriftReport{}, err
	}

	return DriftReport{
		Drift:           drift,
		MaxDrift:        geo.MaxDrift(drift),
		ChordLength:     geo.ChordLength(a, b),
		ArcLength:       arcLength,
		ProjectedLength: geo.PolylineLength(projected),
		Samples:         t.Samples,
	}, nil
}
