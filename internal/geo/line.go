package geo

import "github.com/golang/geo/r3"

// StraightLine samples the Euclidean segment from start to end at sampleCount
// evenly spaced positions, both endpoints included.
func StraightLine(start, end r3.Vector, sampleCount int) ([]r3.Vector, error) {
	if sampleCount < 2 {
		return nil, invalidArgument("straight line", "sample count must be at least 2, got %d", sampleCount)
	}

	delta := end.Sub(start)
	last := sampleCount - 1

	points := make([]r3.Vector, sampleCount)
	for i := 0; i < last; i++ {
		t := float64(i) / float64(last)
		points[i] = start.Add(delta.Mul(t))
	}
	// set exactly so rounding never moves the final endpoint
	points[last] = end

	return points, nil
}
