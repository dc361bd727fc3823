package geo

import "github.com/golang/geo/r3"

// Path is an ordered, non-empty sequence of points drawn as an open polyline.
type Path struct {
	points []Coordinates
}

// NewPath builds a path from the given points in drawing order.
func NewPath(points ...Coordinates) (Path, error) {
	if len(points) == 0 {
		return Path{}, invalidArgument("new path", "a path needs at least one point")
	}

	cp := make([]Coordinates, len(points))
	copy(cp, points)
	return Path{points: cp}, nil
}

// PathFromPoints wraps raw vectors into a path against a sphere of the given radius.
func PathFromPoints(points []r3.Vector, radius, width float64) (Path, error) {
	if len(points) == 0 {
		return Path{}, invalidArgument("path from points", "a path needs at least one point")
	}

	coords := make([]Coordinates, len(points))
	for i, p := range points {
		c, err := FromCartesian(p, radius, width)
		if err != nil {
			return Path{}, err
		}
		coords[i] = c
	}
	return Path{points: coords}, nil
}

// Len returns the number of points.
func (p Path) Len() int { return len(p.points) }

// Points returns a copy of the path's coordinates.
func (p Path) Points() []Coordinates {
	cp := make([]Coordinates, len(p.points))
	copy(cp, p.points)
	return cp
}

// Cartesian returns the path as vectors.
func (p Path) Cartesian() []r3.Vector {
	out := make([]r3.Vector, len(p.points))
	for i, c := range p.points {
		out[i] = c.Cartesian()
	}
	return out
}
