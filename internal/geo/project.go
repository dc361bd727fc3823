package geo

import "github.com/golang/geo/r3"

// ProjectOntoSphere pushes every point radially onto the surface of a sphere of
// the given radius. Output matches input index for index.
//
// A point at the origin has no direction and is rejected. This happens for real
// when a chord joins two antipodal endpoints and passes through the centre, where
// rounding leaves a residue of a few ulps. A point counts as the centre when its
// norm is within centreTolerance of the largest norm in points.
func ProjectOntoSphere(points []r3.Vector, radius float64) ([]r3.Vector, error) {
	if err := checkRadius("project onto sphere", radius); err != nil {
		return nil, err
	}

	norms := make([]float64, len(points))
	var largest float64
	for i, p := range points {
		norms[i] = p.Norm()
		if !finite(norms[i]) {
			return nil, invalidArgument("project onto sphere", "point %d is not finite: %v", i, p)
		}
		largest = max(largest, norms[i])
	}

	projected := make([]r3.Vector, len(points))
	for i, p := range points {
		if norms[i] == 0 || norms[i] <= centreTolerance*largest {
			return nil, invalidArgument("project onto sphere", "point %d is the sphere centre", i)
		}
		projected[i] = p.Mul(radius / norms[i])
	}

	return projected, nil
}
