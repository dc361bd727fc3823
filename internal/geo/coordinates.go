// Package geo holds the spherical geometry used by the tutorial: coordinate
// conversion, chord sampling, radial projection and great-circle reference paths.
package geo

import (
	"math"

	"github.com/golang/geo/r3"
)

// Coordinates is a point described relative to a sphere centred on the origin.
//
// Longitude rotates about the vertical Y axis starting from the +Z meridian and
// increasing toward +X. Latitude tilts from the equatorial plane toward +Y.
// Scale is the fraction of Radius at which the point sits from the centre: 1 on
// the surface, 0 at the centre. Width only affects how the point is drawn.
//
// The Cartesian position is always derived, never stored.
type Coordinates struct {
	longitude float64
	latitude  float64
	radius    float64
	width     float64
	scale     float64
}

// NewCoordinates returns a surface point at the given longitude and latitude in degrees.
func NewCoordinates(longitude, latitude, radius, width float64) (Coordinates, error) {
	if err := checkRadius("new coordinates", radius); err != nil {
		return Coordinates{}, err
	}
	if !finite(longitude) || !finite(latitude) {
		return Coordinates{}, invalidArgument("new coordinates", "angles must be finite, got (%v, %v)", longitude, latitude)
	}

	return Coordinates{
		longitude: longitude,
		latitude:  latitude,
		radius:    radius,
		width:     width,
		scale:     1,
	}, nil
}

// ToCartesian converts a longitude/latitude pair in degrees at the given radius
// into a Cartesian vector.
func ToCartesian(longitude, latitude, radius float64) (r3.Vector, error) {
	if err := checkRadius("to cartesian", radius); err != nil {
		return r3.Vector{}, err
	}
	if !finite(longitude) || !finite(latitude) {
		return r3.Vector{}, invalidArgument("to cartesian", "angles must be finite, got (%v, %v)", longitude, latitude)
	}
	return cartesian(longitude, latitude, radius), nil
}

func cartesian(longitude, latitude, radius float64) r3.Vector {
	lon := radians(longitude)
	lat := radians(latitude)
	cosLat := math.Cos(lat)

	return r3.Vector{
		X: radius * cosLat * math.Sin(lon),
		Y: radius * math.Sin(lat),
		Z: radius * cosLat * math.Cos(lon),
	}
}

// FromCartesian recovers Coordinates for a point relative to a sphere of the given radius.
//
// Points off the surface keep their distance through Scale, so Cartesian returns
// the original point. The origin maps to longitude 0, latitude 0 and Scale 0.
// Points on the polar axis get longitude 0.
func FromCartesian(point r3.Vector, radius, width float64) (Coordinates, error) {
	if err := checkRadius("from cartesian", radius); err != nil {
		return Coordinates{}, err
	}
	if !finite(point.X) || !finite(point.Y) || !finite(point.Z) {
		return Coordinates{}, invalidArgument("from cartesian", "point must be finite, got %v", point)
	}

	c := Coordinates{radius: radius, width: width}

	norm := point.Norm()
	if norm == 0 {
		return c, nil
	}

	// Clamp absorbs rounding that pushes |y|/norm just above 1.
	sinLat := math.Max(-1, math.Min(1, point.Y/norm))
	c.latitude = degrees(math.Asin(sinLat))

	if math.Hypot(point.X, point.Z) > poleTolerance*norm {
		c.longitude = degrees(math.Atan2(point.X, point.Z))
	}

	c.scale = norm / radius
	return c, nil
}

// Longitude in degrees.
func (c Coordinates) Longitude() float64 { return c.longitude }

// Latitude in degrees.
func (c Coordinates) Latitude() float64 { return c.latitude }

// Radius of the sphere the point is expressed against.
func (c Coordinates) Radius() float64 { return c.radius }

// Width is the display width used when drawing the point.
func (c Coordinates) Width() float64 { return c.width }

// Scale is the distance from the centre as a fraction of Radius.
func (c Coordinates) Scale() float64 { return c.scale }

// IsCenter reports whether the point is the sphere centre.
func (c Coordinates) IsCenter() bool { return c.scale == 0 }

// Cartesian returns the point as a vector.
func (c Coordinates) Cartesian() r3.Vector {
	return cartesian(c.longitude, c.latitude, c.radius*c.scale)
}

// OnSurface returns the same direction pushed onto the sphere surface.
func (c Coordinates) OnSurface() Coordinates {
	c.scale = 1
	return c
}
