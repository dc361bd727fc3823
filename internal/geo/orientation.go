package geo

import (
	"math"

	"github.com/golang/geo/r3"
)

// Orientation is the point of the sphere a viewer is looking at.
// Values are immutable; Drag and Focus return new orientations.
type Orientation struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
}

// Focus returns an orientation looking at the given point, with latitude
// clamped to the poles and longitude wrapped into [-180, 180).
func Focus(longitude, latitude float64) Orientation {
	return Orientation{
		Longitude: WrapLongitude(longitude),
		Latitude:  ClampLatitude(latitude),
	}
}

// Drag applies a pointer movement. Dragging right or up turns the sphere with
// the pointer, so the focus moves the opposite way.
func (o Orientation) Drag(dx, dy, speed float64) Orientation {
	return Focus(o.Longitude-dx*speed, o.Latitude-dy*speed)
}

// Apply rotates v so the focus point ends up on +Z, facing the viewer, with +Y
// kept up. Longitude is undone about Y first, then latitude about X.
func (o Orientation) Apply(v r3.Vector) r3.Vector {
	sinLon, cosLon := math.Sincos(radians(o.Longitude))
	x := v.X*cosLon - v.Z*sinLon
	z := v.X*sinLon + v.Z*cosLon

	sinLat, cosLat := math.Sincos(radians(o.Latitude))
	return r3.Vector{
		X: x,
		Y: v.Y*cosLat - z*sinLat,
		Z: v.Y*sinLat + z*cosLat,
	}
}
