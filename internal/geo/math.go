package geo

import "math"

// poleTolerance is the horizontal-to-total length ratio below which a point is
// treated as sitting on the polar axis.
const poleTolerance = 1e-12

// centreTolerance is the distance from the centre, as a fraction of the largest
// norm in a point set, below which a point has no usable direction.
const centreTolerance = 1e-12

func radians(deg float64) float64 { return deg * (math.Pi / 180.0) }

func degrees(rad float64) float64 { return rad * (180.0 / math.Pi) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// checkRadius rejects radii for which no direction can be recovered.
func checkRadius(op string, radius float64) error {
	if !finite(radius) || radius <= 0 {
		return invalidArgument(op, "radius must be positive and finite, got %v", radius)
	}
	return nil
}

// ClampLatitude limits a latitude to [-90, 90] degrees.
func ClampLatitude(lat float64) float64 {
	if lat > 90 {
		return 90
	} else if lat < -90 {
		return -90
	}
	return lat
}

// WrapLongitude maps any longitude into [-180, 180) degrees.
func WrapLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
