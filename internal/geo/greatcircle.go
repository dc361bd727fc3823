package geo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// antipodalTolerance bounds |a x b| / (|a||b|) below which two directions on
// opposite sides of the sphere do not define a single great circle.
const antipodalTolerance = 1e-9

// GreatCircle samples the shortest arc between the directions of start and end
// on a sphere of the given radius, evenly spaced by angle.
func GreatCircle(start, end r3.Vector, sampleCount int, radius float64) ([]r3.Vector, error) {
	const op = "great circle"

	if sampleCount < 2 {
		return nil, invalidArgument(op, "sample count must be at least 2, got %d", sampleCount)
	}
	if err := checkRadius(op, radius); err != nil {
		return nil, err
	}
	if start.Norm() == 0 || end.Norm() == 0 {
		return nil, invalidArgument(op, "endpoints must not be the sphere centre")
	}

	a := s2.Point{Vector: start.Normalize()}
	b := s2.Point{Vector: end.Normalize()}
	if a.Dot(b.Vector) < 0 && a.Cross(b.Vector).Norm() < antipodalTolerance {
		return nil, invalidArgument(op, "endpoints are antipodal, the arc is not unique")
	}

	last := sampleCount - 1
	points := make([]r3.Vector, sampleCount)
	for i := 0; i <= last; i++ {
		t := float64(i) / float64(last)
		points[i] = s2.Interpolate(t, a, b).Mul(radius)
	}

	return points, nil
}

// SpacingDrift returns, per index, the angle in degrees between a projected
// chord sample and the matching evenly spaced great-circle sample.
//
// Radially projected chord samples stay in the great-circle plane but bunch up
// toward the endpoints; the drift is zero at both ends and peaks in between.
func SpacingDrift(projected, reference []r3.Vector) ([]float64, error) {
	if len(projected) != len(reference) {
		return nil, invalidArgument("spacing drift", "length mismatch: %d projected vs %d reference", len(projected), len(reference))
	}

	drift := make([]float64, len(projected))
	for i := range projected {
		if projected[i].Norm() == 0 || reference[i].Norm() == 0 {
			return nil, invalidArgument("spacing drift", "point %d is the sphere centre", i)
		}
		drift[i] = projected[i].Angle(reference[i]).Degrees()
	}

	return drift, nil
}

// ArcLength is the great-circle distance between the directions of a and b on
// a sphere of the given radius.
func ArcLength(a, b r3.Vector, radius float64) (float64, error) {
	if err := checkRadius("arc length", radius); err != nil {
		return 0, err
	}
	if a.Norm() == 0 || b.Norm() == 0 {
		return 0, invalidArgument("arc length", "endpoints must not be the sphere centre")
	}
	return radius * a.Angle(b).Radians(), nil
}

// ChordLength is the straight-line distance between a and b.
func ChordLength(a, b r3.Vector) float64 {
	return a.Distance(b)
}

// PolylineLength sums the segment lengths of an ordered point set.
func PolylineLength(points []r3.Vector) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

// MaxDrift returns the largest value in drift, or 0 for an empty slice.
func MaxDrift(drift []float64) float64 {
	m := 0.0
	for _, d := range drift {
		m = math.Max(m, d)
	}
	return m
}
